package dataset

// Column names of the cleaned player CSV. The schema evolves between
// pipeline runs, so nothing outside identity may assume a column exists.
const (
	ColPlayerID = "playerId"
	ColName     = "name"
	ColAltName  = "player_name"
	ColTeamName = "teamName"
	ColPosition = "position"

	ColFirstSidePosition  = "firstSidePosition"
	ColSecondSidePosition = "secondSidePosition"

	ColAge           = "age"
	ColHeight        = "height"
	ColPreferredFoot = "preferredFoot"
	ColDateOfBirth   = "date_of_birth"
	ColNationalityID = "nationalityId"

	ColContractUntil       = "contractUntil"
	ColMarketValueCurrent  = "MarketValueCurrent"
	ColMarketValuePrevious = "MarketValuePrevious"
	ColMarketValueCurrency = "MarketValueCurrency"

	ColRating         = "rating"
	ColAppearances    = "appearances"
	ColMinutesPlayed  = "minutesPlayed"
	ColMatchesStarted = "matchesStarted"

	ColGoals                    = "goals"
	ColExpectedGoals            = "expectedGoals"
	ColAssists                  = "assists"
	ColExpectedAssists          = "expectedAssists"
	ColTotalShots               = "totalShots"
	ColShotsOnTarget            = "shotsOnTarget"
	ColGoalConversionPct        = "goalConversionPercentage"
	ColBigChancesMissed         = "bigChancesMissed"
	ColKeyPasses                = "keyPasses"
	ColTotalPasses              = "totalPasses"
	ColAccuratePassesPct        = "accuratePassesPercentage"
	ColAccurateFinalThirdPasses = "accurateFinalThirdPasses"
	ColBigChancesCreated        = "bigChancesCreated"
	ColSuccessfulDribbles       = "successfulDribbles"
	ColSuccessfulDribblesPct    = "successfulDribblesPercentage"
	ColPossessionWonAttThird    = "possessionWonAttThird"
	ColTouches                  = "touches"
	ColTackles                  = "tackles"
	ColTacklesWon               = "tacklesWon"
	ColInterceptions            = "interceptions"
	ColClearances               = "clearances"
	ColBlockedShots             = "blockedShots"
	ColBallRecovery             = "ballRecovery"
	ColGroundDuelsWon           = "groundDuelsWon"
	ColGroundDuelsWonPct        = "groundDuelsWonPercentage"
	ColAerialDuelsWon           = "aerialDuelsWon"
	ColAerialDuelsWonPct        = "aerialDuelsWonPercentage"
	ColTotalDuelsWon            = "totalDuelsWon"
	ColTotalDuelsWonPct         = "totalDuelsWonPercentage"
)
