package testutil

import (
	"encoding/csv"
	"strings"
)

// PlayerRow maps column name to raw cell text; absent keys become empty
// cells, which the loader treats as missing.
type PlayerRow map[string]string

// BuildCSV renders rows against an explicit column order.
func BuildCSV(columns []string, rows []PlayerRow) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row[col]
		}
		_ = w.Write(record)
	}
	w.Flush()

	return sb.String()
}

// FixtureColumns is the schema of the standard fixture population.
var FixtureColumns = []string{
	"playerId", "name", "player_name", "teamName", "position",
	"age", "height", "preferredFoot", "date_of_birth", "nationalityId",
	"contractUntil", "MarketValueCurrent", "MarketValuePrevious", "MarketValueCurrency",
	"rating", "appearances", "minutesPlayed", "matchesStarted",
	"goals", "expectedGoals", "assists", "totalShots", "shotsOnTarget",
	"keyPasses", "accuratePassesPercentage", "totalPasses", "bigChancesCreated",
	"successfulDribbles", "successfulDribblesPercentage", "touches",
	"tackles", "interceptions", "clearances", "blockedShots",
	"groundDuelsWon", "aerialDuelsWon", "totalDuelsWonPercentage",
}

// FixturePlayers is a six-player population covering the interesting cases:
// a loaned player with a " ~ " team suffix, a goalkeeper with no rating and
// no attacking stats, an unmapped position, and a row known only by its
// alternate name.
func FixturePlayers() []PlayerRow {
	return []PlayerRow{
		{
			"playerId": "101", "name": "Harry Kane", "player_name": "H. Kane",
			"teamName": "Bayern Munich", "position": "Centre-Forward",
			"age": "30.0", "height": "188.0", "preferredFoot": "Right",
			"date_of_birth": "1993-07-28", "nationalityId": "21",
			"contractUntil": "2027-06-30",
			"MarketValueCurrent": "100000000", "MarketValuePrevious": "90000000",
			"MarketValueCurrency": "EUR",
			"rating":              "7.9", "appearances": "32", "minutesPlayed": "2800", "matchesStarted": "31",
			"goals": "36", "expectedGoals": "28.5", "assists": "8",
			"totalShots": "120", "shotsOnTarget": "60",
			"keyPasses": "45", "accuratePassesPercentage": "78.2", "totalPasses": "900",
			"bigChancesCreated":  "12",
			"successfulDribbles": "20", "successfulDribblesPercentage": "55.5", "touches": "1500",
			"tackles": "10", "interceptions": "5", "clearances": "12", "blockedShots": "3",
			"groundDuelsWon": "110", "aerialDuelsWon": "80", "totalDuelsWonPercentage": "52.3",
		},
		{
			"playerId": "102", "name": "Kevin De Bruyne", "player_name": "K. De Bruyne",
			"teamName": "Manchester City", "position": "Central Midfield",
			"age": "32.0", "height": "181.0", "preferredFoot": "Right",
			"date_of_birth": "1991-06-28", "nationalityId": "34",
			"contractUntil": "2025-06-30",
			"MarketValueCurrent": "80000000", "MarketValuePrevious": "85000000",
			"MarketValueCurrency": "EUR",
			"rating":              "7.8", "appearances": "28", "minutesPlayed": "2300", "matchesStarted": "26",
			"goals": "10", "expectedGoals": "8.2", "assists": "18",
			"totalShots": "70", "shotsOnTarget": "30",
			"keyPasses": "90", "accuratePassesPercentage": "82.4", "totalPasses": "1600",
			"bigChancesCreated":  "20",
			"successfulDribbles": "35", "successfulDribblesPercentage": "60.1", "touches": "2100",
			"tackles": "25", "interceptions": "12", "clearances": "8", "blockedShots": "4",
			"groundDuelsWon": "130", "aerialDuelsWon": "20", "totalDuelsWonPercentage": "49.8",
		},
		{
			"playerId": "103", "name": "Virgil van Dijk", "player_name": "V. van Dijk",
			"teamName": "Liverpool", "position": "Centre-Back",
			"age": "32.0", "height": "193.0", "preferredFoot": "Right",
			"date_of_birth": "1991-07-08", "nationalityId": "45",
			"contractUntil": "2025-06-30",
			"MarketValueCurrent": "40000000", "MarketValuePrevious": "40000000",
			"MarketValueCurrency": "EUR",
			"rating":              "7.4", "appearances": "34", "minutesPlayed": "3000", "matchesStarted": "34",
			"goals": "3", "expectedGoals": "2.1", "assists": "1",
			"totalShots": "25", "shotsOnTarget": "8",
			"keyPasses": "10", "accuratePassesPercentage": "90.5", "totalPasses": "2600",
			"bigChancesCreated":  "2",
			"successfulDribbles": "5", "successfulDribblesPercentage": "40.0", "touches": "2900",
			"tackles": "40", "interceptions": "50", "clearances": "150", "blockedShots": "25",
			"groundDuelsWon": "90", "aerialDuelsWon": "160", "totalDuelsWonPercentage": "68.9",
		},
		{
			// No rating, no previous market value, no attacking stats.
			"playerId": "104", "name": "Marc ter Stegen", "player_name": "M. ter Stegen",
			"teamName": "Barcelona", "position": "Goalkeeper",
			"age": "31.0", "height": "187.0", "preferredFoot": "Right",
			"date_of_birth": "1992-04-30", "nationalityId": "40",
			"contractUntil":      "2028-06-30",
			"MarketValueCurrent": "25000000",
			"MarketValueCurrency": "EUR",
			"appearances":         "30", "minutesPlayed": "2700", "matchesStarted": "30",
			"accuratePassesPercentage": "85.0", "totalPasses": "1000",
		},
		{
			// Loaned player: team carries the " ~ " suffix.
			"playerId": "105", "name": "Jadon Sancho", "player_name": "J. Sancho",
			"teamName": "Manchester United ~ Borussia Dortmund", "position": "Right Winger",
			"age": "23.0", "height": "180.0", "preferredFoot": "Right",
			"date_of_birth": "2000-03-25", "nationalityId": "14",
			"contractUntil": "2026-06-30",
			"MarketValueCurrent": "30000000", "MarketValuePrevious": "35000000",
			"MarketValueCurrency": "EUR",
			"rating":              "6.9", "appearances": "20", "minutesPlayed": "1200", "matchesStarted": "12",
			"goals": "3", "expectedGoals": "4.0", "assists": "2",
			"totalShots": "30", "shotsOnTarget": "12",
			"keyPasses": "18", "accuratePassesPercentage": "80.1", "totalPasses": "500",
			"bigChancesCreated":  "4",
			"successfulDribbles": "28", "successfulDribblesPercentage": "58.2", "touches": "700",
			"tackles": "8", "interceptions": "3", "clearances": "2", "blockedShots": "1",
			"groundDuelsWon": "45", "aerialDuelsWon": "5", "totalDuelsWonPercentage": "47.2",
		},
		{
			// Known only by the alternate name; unmapped position; no team.
			"playerId": "106", "player_name": "J. Doe", "position": "Sweeper",
			"rating": "6.5", "appearances": "5",
			"goals": "1", "totalShots": "6", "shotsOnTarget": "2",
		},
	}
}

// FixtureCSV renders the standard population.
func FixtureCSV() string {
	return BuildCSV(FixtureColumns, FixturePlayers())
}
