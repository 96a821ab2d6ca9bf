package service

import (
	"math"
	"sort"
	"strings"

	"github.com/dom/football-dashboard/internal/dataset"
	"github.com/dom/football-dashboard/internal/domain"
)

// sortColumns is the allow-list of public sort fields. Anything else falls
// back to market value.
var sortColumns = map[string]string{
	"marketValue": dataset.ColMarketValueCurrent,
	"rating":      dataset.ColRating,
	"name":        dataset.ColName,
	"age":         dataset.ColAge,
	"goals":       dataset.ColGoals,
}

// ListParams are the listing filters. Page and Limit are validated at the
// HTTP boundary before they reach the service.
type ListParams struct {
	Page          int
	Limit         int
	Search        string
	PositionGroup string
	Team          string
	SortBy        string
	SortOrder     string
}

// PlayerService answers every query against the loaded player table. All
// methods are pure reads over shared immutable rows: filtering and sorting
// happen on request-scoped slices, so the service is safe for unlimited
// concurrent use.
type PlayerService struct {
	table *dataset.Table
}

func NewPlayerService(table *dataset.Table) *PlayerService {
	return &PlayerService{table: table}
}

// List returns one page of player summaries plus the filtered total.
func (s *PlayerService) List(params ListParams) ([]domain.PlayerSummary, int) {
	rows := s.table.Rows()

	if params.Search != "" {
		search := strings.ToLower(params.Search)
		rows = filterRows(rows, func(row *dataset.Row) bool {
			return matchesName(row, search)
		})
	}

	if params.PositionGroup != "" && params.PositionGroup != domain.GroupAll {
		group := domain.PositionGroup(params.PositionGroup)
		rows = filterRows(rows, func(row *dataset.Row) bool {
			return row.PositionGroup == group
		})
	}

	if params.Team != "" {
		team := strings.ToLower(params.Team)
		rows = filterRows(rows, func(row *dataset.Row) bool {
			name, ok := row.PrimaryTeam()
			return ok && strings.Contains(strings.ToLower(name), team)
		})
	}

	s.sortRows(rows, params.SortBy, params.SortOrder)

	total := len(rows)

	// Any page past the end is empty, including pages so large that the
	// offset multiplication would overflow.
	if params.Page-1 > total/params.Limit {
		return []domain.PlayerSummary{}, total
	}
	start := (params.Page - 1) * params.Limit
	if start >= total {
		return []domain.PlayerSummary{}, total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	players := make([]domain.PlayerSummary, 0, end-start)
	for _, row := range rows[start:end] {
		players = append(players, summarize(row))
	}

	return players, total
}

// GetByID returns the full detail projection for one player.
func (s *PlayerService) GetByID(id int) (*domain.PlayerDetail, error) {
	row, ok := s.table.ByID(id)
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return detail(row), nil
}

// GetRadar returns the precomputed radar percentiles for one player.
func (s *PlayerService) GetRadar(id int) (*domain.RadarScores, error) {
	row, ok := s.table.ByID(id)
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	radar := row.Radar
	return &radar, nil
}

// Positions returns the fixed position-group filter catalog.
func (s *PlayerService) Positions() []domain.PositionOption {
	return domain.PositionOptions()
}

// Teams returns the sorted distinct primary team names in the population.
func (s *PlayerService) Teams() []string {
	seen := make(map[string]struct{})
	for _, row := range s.table.Rows() {
		if name, ok := row.PrimaryTeam(); ok {
			seen[name] = struct{}{}
		}
	}

	teams := make([]string, 0, len(seen))
	for name := range seen {
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return teams
}

func filterRows(rows []*dataset.Row, keep func(*dataset.Row) bool) []*dataset.Row {
	filtered := rows[:0]
	for _, row := range rows {
		if keep(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// matchesName matches the lowercased search term against either naming
// convention kept by the upstream merge. Missing names never match.
func matchesName(row *dataset.Row, search string) bool {
	if name, ok := row.Text(dataset.ColName); ok &&
		strings.Contains(strings.ToLower(name), search) {
		return true
	}
	if name, ok := row.Text(dataset.ColAltName); ok &&
		strings.Contains(strings.ToLower(name), search) {
		return true
	}
	return false
}

// sortRows orders rows in place. Rows with a missing sort value go last in
// both directions. An unknown sortBy falls back to market value; a sort
// column absent from the schema leaves the load order untouched.
func (s *PlayerService) sortRows(rows []*dataset.Row, sortBy, sortOrder string) {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = dataset.ColMarketValueCurrent
	}
	if !s.table.HasColumn(col) {
		return
	}

	asc := strings.EqualFold(sortOrder, "asc")

	if col == dataset.ColName {
		sort.SliceStable(rows, func(i, j int) bool {
			vi, oki := rows[i].Text(col)
			vj, okj := rows[j].Text(col)
			if oki != okj {
				return oki
			}
			if !oki {
				return false
			}
			if asc {
				return vi < vj
			}
			return vi > vj
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		vi, oki := rows[i].Float(col)
		vj, okj := rows[j].Float(col)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if asc {
			return vi < vj
		}
		return vi > vj
	})
}

func summarize(row *dataset.Row) domain.PlayerSummary {
	return domain.PlayerSummary{
		PlayerID:            row.ID,
		Name:                row.DisplayName(),
		TeamName:            displayTeamName(row),
		Position:            textOrUnknown(row, dataset.ColPosition),
		PositionGroup:       string(row.PositionGroup),
		Age:                 row.FloatPtr(dataset.ColAge),
		MarketValue:         row.FloatPtr(dataset.ColMarketValueCurrent),
		MarketValueCurrency: currency(row),
		Rating:              row.FloatPtr(dataset.ColRating),
		Appearances:         row.IntPtr(dataset.ColAppearances),
	}
}

func detail(row *dataset.Row) *domain.PlayerDetail {
	return &domain.PlayerDetail{
		PlayerID:           row.ID,
		Name:               row.DisplayName(),
		TeamName:           displayTeamName(row),
		Position:           textOrUnknown(row, dataset.ColPosition),
		PositionGroup:      string(row.PositionGroup),
		FirstSidePosition:  row.TextPtr(dataset.ColFirstSidePosition),
		SecondSidePosition: row.TextPtr(dataset.ColSecondSidePosition),

		Age:           row.FloatPtr(dataset.ColAge),
		Height:        row.FloatPtr(dataset.ColHeight),
		PreferredFoot: row.TextPtr(dataset.ColPreferredFoot),
		DateOfBirth:   row.TextPtr(dataset.ColDateOfBirth),
		NationalityID: row.IntPtr(dataset.ColNationalityID),

		ContractUntil:       row.TextPtr(dataset.ColContractUntil),
		MarketValueCurrent:  row.FloatPtr(dataset.ColMarketValueCurrent),
		MarketValuePrevious: row.FloatPtr(dataset.ColMarketValuePrevious),
		MarketValueCurrency: currency(row),
		MarketValueTrend:    marketValueTrend(row),

		Appearances:    row.IntPtr(dataset.ColAppearances),
		MinutesPlayed:  row.FloatPtr(dataset.ColMinutesPlayed),
		MatchesStarted: row.IntPtr(dataset.ColMatchesStarted),

		Rating: row.FloatPtr(dataset.ColRating),

		Goals:         row.FloatPtr(dataset.ColGoals),
		ExpectedGoals: row.FloatPtr(dataset.ColExpectedGoals),
		Assists:       row.FloatPtr(dataset.ColAssists),

		TotalPasses:              row.FloatPtr(dataset.ColTotalPasses),
		AccuratePassesPercentage: row.FloatPtr(dataset.ColAccuratePassesPct),
		SuccessfulDribbles:       row.FloatPtr(dataset.ColSuccessfulDribbles),
		Tackles:                  row.FloatPtr(dataset.ColTackles),
		Interceptions:            row.FloatPtr(dataset.ColInterceptions),
		KeyPasses:                row.FloatPtr(dataset.ColKeyPasses),
		BigChancesCreated:        row.FloatPtr(dataset.ColBigChancesCreated),
		Clearances:               row.FloatPtr(dataset.ColClearances),
		AerialDuelsWon:           row.FloatPtr(dataset.ColAerialDuelsWon),
		GroundDuelsWon:           row.FloatPtr(dataset.ColGroundDuelsWon),
		TotalShots:               row.FloatPtr(dataset.ColTotalShots),
		ShotsOnTarget:            row.FloatPtr(dataset.ColShotsOnTarget),

		Radar:         row.Radar,
		DetailedStats: detailedStats(row),
	}
}

// detailedStats builds the display-table block. This block deliberately
// zero-defaults missing values (the tables cannot render nulls), unlike the
// null-preserving flat fields above.
func detailedStats(row *dataset.Row) domain.DetailedStats {
	return domain.DetailedStats{
		Attacking: map[string]float64{
			"Goals":     statCount(row, dataset.ColGoals),
			"xG":        statRounded(row, dataset.ColExpectedGoals, 2),
			"Shots":     statCount(row, dataset.ColTotalShots),
			"On Target": statCount(row, dataset.ColShotsOnTarget),
		},
		Passing: map[string]float64{
			"Assists":         statCount(row, dataset.ColAssists),
			"Key Passes":      statCount(row, dataset.ColKeyPasses),
			"Pass %":          statRounded(row, dataset.ColAccuratePassesPct, 1),
			"Chances Created": statCount(row, dataset.ColBigChancesCreated),
		},
		Dribbling: map[string]float64{
			"Dribbles":  statCount(row, dataset.ColSuccessfulDribbles),
			"Dribble %": statRounded(row, dataset.ColSuccessfulDribblesPct, 1),
			"Touches":   statCount(row, dataset.ColTouches),
		},
		Defending: map[string]float64{
			"Tackles":       statCount(row, dataset.ColTackles),
			"Interceptions": statCount(row, dataset.ColInterceptions),
			"Clearances":    statCount(row, dataset.ColClearances),
			"Blocks":        statCount(row, dataset.ColBlockedShots),
		},
		Physical: map[string]float64{
			"Ground Duels": statCount(row, dataset.ColGroundDuelsWon),
			"Aerial Duels": statCount(row, dataset.ColAerialDuelsWon),
			"Duels Won %":  statRounded(row, dataset.ColTotalDuelsWonPct, 1),
		},
	}
}

func marketValueTrend(row *dataset.Row) domain.MarketValueTrend {
	current, okCurrent := row.Float(dataset.ColMarketValueCurrent)
	previous, okPrevious := row.Float(dataset.ColMarketValuePrevious)
	if !okCurrent || !okPrevious {
		return domain.TrendStable
	}
	switch {
	case current > previous:
		return domain.TrendUp
	case current < previous:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

func displayTeamName(row *dataset.Row) string {
	if name, ok := row.PrimaryTeam(); ok {
		return name
	}
	return "Unknown"
}

func currency(row *dataset.Row) string {
	if v, ok := row.Text(dataset.ColMarketValueCurrency); ok {
		return v
	}
	return "EUR"
}

func textOrUnknown(row *dataset.Row, col string) string {
	if v, ok := row.Text(col); ok {
		return v
	}
	return "Unknown"
}

func statCount(row *dataset.Row, col string) float64 {
	v, ok := row.Float(col)
	if !ok {
		return 0
	}
	return math.Trunc(v)
}

func statRounded(row *dataset.Row, col string, decimals int) float64 {
	v, ok := row.Float(col)
	if !ok {
		return 0
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
