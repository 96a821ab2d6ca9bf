package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom/football-dashboard/internal/domain"
	"github.com/dom/football-dashboard/internal/service"
	"github.com/dom/football-dashboard/internal/testutil"
)

func newService(t *testing.T) *service.PlayerService {
	t.Helper()
	return service.NewServices(testutil.LoadTable(t, testutil.FixtureCSV())).Player
}

func listParams() service.ListParams {
	return service.ListParams{Page: 1, Limit: 50}
}

func playerIDs(players []domain.PlayerSummary) []int {
	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.PlayerID
	}
	return ids
}

func TestList_DefaultSortIsMarketValueDescending(t *testing.T) {
	svc := newService(t)

	players, total := svc.List(listParams())

	assert.Equal(t, 6, total)
	// 106 has no market value and sorts last.
	assert.Equal(t, []int{101, 102, 103, 105, 104, 106}, playerIDs(players))
}

func TestList_UnknownSortFieldFallsBackToMarketValue(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.SortBy = "shoeSize"
	players, _ := svc.List(params)

	assert.Equal(t, []int{101, 102, 103, 105, 104, 106}, playerIDs(players))
}

func TestList_SortByRatingNullsLastBothDirections(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.SortBy = "rating"
	params.SortOrder = "asc"
	players, _ := svc.List(params)
	assert.Equal(t, []int{106, 105, 103, 102, 101, 104}, playerIDs(players))

	params.SortOrder = "desc"
	players, _ = svc.List(params)
	assert.Equal(t, []int{101, 102, 103, 105, 106, 104}, playerIDs(players))
}

func TestList_SortByName(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.SortBy = "name"
	params.SortOrder = "asc"
	players, _ := svc.List(params)

	// Sorted on the raw name column; 106 has none and goes last.
	assert.Equal(t, []int{101, 105, 102, 104, 103, 106}, playerIDs(players))
}

func TestList_SortByAgeKeepsTiesStable(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.SortBy = "age"
	params.SortOrder = "asc"
	players, _ := svc.List(params)

	// 102 and 103 are both 32; stable sort keeps load order between them.
	assert.Equal(t, []int{105, 101, 104, 102, 103, 106}, playerIDs(players))
}

func TestList_SearchMatchesEitherNameField(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		search   string
		expected []int
	}{
		{"kane", []int{101}},
		{"doe", []int{106}},  // alternate name only
		{"VAN", []int{103}},  // case-insensitive
		{"zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			params := listParams()
			params.Search = tt.search
			players, total := svc.List(params)

			assert.Equal(t, len(tt.expected), total)
			assert.Equal(t, tt.expected, playerIDs(players))
		})
	}
}

func TestList_PositionGroupFilter(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.PositionGroup = "ATT"
	players, total := svc.List(params)
	assert.Equal(t, 2, total)
	assert.ElementsMatch(t, []int{101, 105}, playerIDs(players))

	params.PositionGroup = "ALL"
	_, total = svc.List(params)
	assert.Equal(t, 6, total)

	// Unknown groups are exact-match filters that match nothing.
	params.PositionGroup = "XYZ"
	players, total = svc.List(params)
	assert.Equal(t, 0, total)
	assert.Empty(t, players)
}

func TestList_TeamFilterMatchesTruncatedName(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.Team = "manchester"
	players, total := svc.List(params)
	assert.Equal(t, 2, total)
	assert.ElementsMatch(t, []int{102, 105}, playerIDs(players))

	// The loan-club suffix is stripped before matching.
	params.Team = "Borussia"
	_, total = svc.List(params)
	assert.Equal(t, 0, total)
}

func TestList_Pagination(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.Limit = 2

	players, total := svc.List(params)
	assert.Equal(t, 6, total)
	assert.Equal(t, []int{101, 102}, playerIDs(players))

	params.Page = 3
	players, total = svc.List(params)
	assert.Equal(t, 6, total)
	assert.Equal(t, []int{104, 106}, playerIDs(players))

	// Pages beyond the end are empty, not an error.
	params.Page = 4
	players, total = svc.List(params)
	assert.Equal(t, 6, total)
	assert.Empty(t, players)
}

func TestList_HugePageReturnsEmpty(t *testing.T) {
	svc := newService(t)

	// An offset that would overflow (page-1)*limit must still resolve to an
	// empty page, not a slice panic.
	params := listParams()
	params.Page = math.MaxInt
	params.Limit = 100

	players, total := svc.List(params)
	assert.Equal(t, 6, total)
	assert.Empty(t, players)
}

func TestList_Idempotent(t *testing.T) {
	svc := newService(t)

	params := listParams()
	params.Search = "a"
	params.SortBy = "rating"

	first, firstTotal := svc.List(params)
	second, secondTotal := svc.List(params)

	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, first, second)
}

func TestList_SummaryProjection(t *testing.T) {
	svc := newService(t)

	players, _ := svc.List(listParams())

	byID := make(map[int]domain.PlayerSummary, len(players))
	for _, p := range players {
		byID[p.PlayerID] = p
	}

	sancho := byID[105]
	assert.Equal(t, "Jadon Sancho", sancho.Name)
	assert.Equal(t, "Manchester United", sancho.TeamName)
	assert.Equal(t, "ATT", sancho.PositionGroup)
	require.NotNil(t, sancho.MarketValue)
	assert.Equal(t, 30000000.0, *sancho.MarketValue)

	doe := byID[106]
	assert.Equal(t, "J. Doe", doe.Name)
	assert.Equal(t, "Unknown", doe.TeamName)
	assert.Equal(t, "UNK", doe.PositionGroup)
	assert.Nil(t, doe.Age)
	assert.Nil(t, doe.MarketValue)
	assert.Equal(t, "EUR", doe.MarketValueCurrency)
	require.NotNil(t, doe.Rating)
	assert.Equal(t, 6.5, *doe.Rating)
}

func TestGetByID_MarketValueTrend(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		id       int
		expected domain.MarketValueTrend
	}{
		{101, domain.TrendUp},     // 100M > 90M
		{102, domain.TrendDown},   // 80M < 85M
		{103, domain.TrendStable}, // equal
		{104, domain.TrendStable}, // previous missing
	}

	for _, tt := range tests {
		player, err := svc.GetByID(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, player.MarketValueTrend, "player %d", tt.id)
	}
}

func TestGetByID_DetailProjection(t *testing.T) {
	svc := newService(t)

	player, err := svc.GetByID(101)
	require.NoError(t, err)

	assert.Equal(t, "Harry Kane", player.Name)
	assert.Equal(t, "Bayern Munich", player.TeamName)
	assert.Equal(t, "Centre-Forward", player.Position)
	require.NotNil(t, player.DateOfBirth)
	assert.Equal(t, "1993-07-28", *player.DateOfBirth)
	require.NotNil(t, player.Goals)
	assert.Equal(t, 36.0, *player.Goals)
	require.NotNil(t, player.ContractUntil)
	assert.Equal(t, "2027-06-30", *player.ContractUntil)

	assert.Equal(t, 36.0, player.DetailedStats.Attacking["Goals"])
	assert.Equal(t, 28.5, player.DetailedStats.Attacking["xG"])
	assert.Equal(t, 78.2, player.DetailedStats.Passing["Pass %"])
}

func TestGetByID_DetailedStatsZeroDefaultMissing(t *testing.T) {
	svc := newService(t)

	// 104 carries no attacking stats: the flat fields stay null while the
	// display block coerces to zero.
	player, err := svc.GetByID(104)
	require.NoError(t, err)

	assert.Nil(t, player.Goals)
	assert.Nil(t, player.TotalShots)
	assert.Nil(t, player.Rating)

	assert.Equal(t, 0.0, player.DetailedStats.Attacking["Goals"])
	assert.Equal(t, 0.0, player.DetailedStats.Attacking["Shots"])
	assert.Equal(t, 85.0, player.DetailedStats.Passing["Pass %"])
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGetRadar(t *testing.T) {
	svc := newService(t)

	radar, err := svc.GetRadar(101)
	require.NoError(t, err)

	player, err := svc.GetByID(101)
	require.NoError(t, err)
	assert.Equal(t, player.Radar, *radar)

	for _, score := range []float64{
		radar.Attacking, radar.Passing, radar.Dribbling,
		radar.Defending, radar.Physical, radar.Rating,
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestGetRadar_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetRadar(999)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestTeams_SortedDistinctTruncated(t *testing.T) {
	svc := newService(t)

	teams := svc.Teams()

	assert.Equal(t, []string{
		"Barcelona",
		"Bayern Munich",
		"Liverpool",
		"Manchester City",
		"Manchester United",
	}, teams)
}

func TestPositions_FixedCatalog(t *testing.T) {
	svc := newService(t)

	positions := svc.Positions()

	require.Len(t, positions, 5)
	assert.Equal(t, "ALL", positions[0].ID)
	assert.Equal(t, "All Positions", positions[0].Name)
	assert.Equal(t, "GK", positions[1].ID)
}
