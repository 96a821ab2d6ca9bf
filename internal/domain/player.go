package domain

// RadarScores holds the six percentile scores derived once at load time.
// Each value is in [0, 100].
type RadarScores struct {
	Attacking float64 `json:"attacking"`
	Passing   float64 `json:"passing"`
	Dribbling float64 `json:"dribbling"`
	Defending float64 `json:"defending"`
	Physical  float64 `json:"physical"`
	Rating    float64 `json:"rating"`
}

// MarketValueTrend classifies the change between the two market value
// snapshots carried by the dataset.
type MarketValueTrend string

const (
	TrendUp     MarketValueTrend = "up"
	TrendDown   MarketValueTrend = "down"
	TrendStable MarketValueTrend = "stable"
)

// PlayerSummary is the listing projection. Optional fields stay null when
// the source cell is missing; they are never coerced to zero.
type PlayerSummary struct {
	PlayerID            int      `json:"playerId"`
	Name                string   `json:"name"`
	TeamName            string   `json:"teamName"`
	Position            string   `json:"position"`
	PositionGroup       string   `json:"positionGroup"`
	Age                 *float64 `json:"age"`
	MarketValue         *float64 `json:"marketValue"`
	MarketValueCurrency string   `json:"marketValueCurrency"`
	Rating              *float64 `json:"rating"`
	Appearances         *int     `json:"appearances"`
}

// DetailedStats feeds the display tables on the player page. Unlike the
// flat detail fields, missing values render as 0 here because the tables
// cannot show nulls.
type DetailedStats struct {
	Attacking map[string]float64 `json:"attacking"`
	Passing   map[string]float64 `json:"passing"`
	Dribbling map[string]float64 `json:"dribbling"`
	Defending map[string]float64 `json:"defending"`
	Physical  map[string]float64 `json:"physical"`
}

// PlayerDetail is the full single-player projection.
type PlayerDetail struct {
	PlayerID           int     `json:"playerId"`
	Name               string  `json:"name"`
	TeamName           string  `json:"teamName"`
	Position           string  `json:"position"`
	PositionGroup      string  `json:"positionGroup"`
	FirstSidePosition  *string `json:"firstSidePosition"`
	SecondSidePosition *string `json:"secondSidePosition"`

	// Demographics
	Age           *float64 `json:"age"`
	Height        *float64 `json:"height"`
	PreferredFoot *string  `json:"preferredFoot"`
	DateOfBirth   *string  `json:"dateOfBirth"`
	NationalityID *int     `json:"nationalityId"`

	// Contract & market
	ContractUntil       *string          `json:"contractUntil"`
	MarketValueCurrent  *float64         `json:"marketValueCurrent"`
	MarketValuePrevious *float64         `json:"marketValuePrevious"`
	MarketValueCurrency string           `json:"marketValueCurrency"`
	MarketValueTrend    MarketValueTrend `json:"marketValueTrend"`

	// Playing time
	Appearances    *int     `json:"appearances"`
	MinutesPlayed  *float64 `json:"minutesPlayed"`
	MatchesStarted *int     `json:"matchesStarted"`

	Rating *float64 `json:"rating"`

	// Attacking
	Goals         *float64 `json:"goals"`
	ExpectedGoals *float64 `json:"expectedGoals"`
	Assists       *float64 `json:"assists"`

	// Additional key stats
	TotalPasses              *float64 `json:"totalPasses"`
	AccuratePassesPercentage *float64 `json:"accuratePassesPercentage"`
	SuccessfulDribbles       *float64 `json:"successfulDribbles"`
	Tackles                  *float64 `json:"tackles"`
	Interceptions            *float64 `json:"interceptions"`
	KeyPasses                *float64 `json:"keyPasses"`
	BigChancesCreated        *float64 `json:"bigChancesCreated"`
	Clearances               *float64 `json:"clearances"`
	AerialDuelsWon           *float64 `json:"aerialDuelsWon"`
	GroundDuelsWon           *float64 `json:"groundDuelsWon"`
	TotalShots               *float64 `json:"totalShots"`
	ShotsOnTarget            *float64 `json:"shotsOnTarget"`

	Radar         RadarScores   `json:"radar"`
	DetailedStats DetailedStats `json:"detailedStats"`
}

// PlayerPage is the paginated listing response.
type PlayerPage struct {
	Players    []PlayerSummary `json:"players"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}
