package dataset

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dom/football-dashboard/internal/domain"
)

// neutralPercentile is emitted when a score cannot be ranked: either the
// whole category has no source columns in the loaded schema, or a single
// row has no usable value in any of them. Radar fields are never null.
const neutralPercentile = 50.0

type skillCategory struct {
	name    string
	columns []string
	assign  func(*domain.RadarScores, float64)
}

var radarSkills = []skillCategory{
	{
		name: "attacking",
		columns: []string{
			ColGoals, ColExpectedGoals, ColTotalShots, ColShotsOnTarget,
			ColGoalConversionPct, ColBigChancesMissed,
		},
		assign: func(r *domain.RadarScores, v float64) { r.Attacking = v },
	},
	{
		name: "passing",
		columns: []string{
			ColAssists, ColExpectedAssists, ColKeyPasses, ColAccuratePassesPct,
			ColAccurateFinalThirdPasses, ColBigChancesCreated,
		},
		assign: func(r *domain.RadarScores, v float64) { r.Passing = v },
	},
	{
		name: "dribbling",
		columns: []string{
			ColSuccessfulDribbles, ColSuccessfulDribblesPct,
			ColPossessionWonAttThird, ColTouches,
		},
		assign: func(r *domain.RadarScores, v float64) { r.Dribbling = v },
	},
	{
		name: "defending",
		columns: []string{
			ColTackles, ColTacklesWon, ColInterceptions, ColClearances,
			ColBlockedShots, ColBallRecovery,
		},
		assign: func(r *domain.RadarScores, v float64) { r.Defending = v },
	},
	{
		name: "physical",
		columns: []string{
			ColGroundDuelsWon, ColGroundDuelsWonPct,
			ColAerialDuelsWon, ColAerialDuelsWonPct,
			ColTotalDuelsWon, ColTotalDuelsWonPct,
		},
		assign: func(r *domain.RadarScores, v float64) { r.Physical = v },
	},
}

// deriveRadar computes the per-row percentile score for every skill
// category plus the rating pseudo-category. Scores are percentile ranks
// (average rank for ties) of the row-wise mean over the category's source
// columns that are present in the schema, taken across the full population.
func deriveRadar(t *Table) {
	for _, category := range radarSkills {
		present := category.columns[:0:0]
		for _, col := range category.columns {
			if t.HasColumn(col) {
				present = append(present, col)
			}
		}

		if len(present) == 0 {
			for _, row := range t.rows {
				category.assign(&row.Radar, neutralPercentile)
			}
			continue
		}

		composites := make([]float64, len(t.rows))
		known := make([]bool, len(t.rows))
		for i, row := range t.rows {
			var values []float64
			for _, col := range present {
				if v, ok := row.Float(col); ok {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				continue
			}
			composites[i] = stat.Mean(values, nil)
			known[i] = true
		}

		scores := percentileRanks(composites, known)
		for i, row := range t.rows {
			category.assign(&row.Radar, scores[i])
		}
	}

	deriveRatingPercentile(t)
}

func deriveRatingPercentile(t *Table) {
	if !t.HasColumn(ColRating) {
		for _, row := range t.rows {
			row.Radar.Rating = neutralPercentile
		}
		return
	}

	ratings := make([]float64, len(t.rows))
	known := make([]bool, len(t.rows))
	for i, row := range t.rows {
		if v, ok := row.Float(ColRating); ok {
			ratings[i] = v
			known[i] = true
		}
	}

	scores := percentileRanks(ratings, known)
	for i, row := range t.rows {
		row.Radar.Rating = scores[i]
	}
}

// percentileRanks converts values into 0-100 percentile ranks. Tied values
// share the average of the ranks they span, and the denominator counts only
// known values, so the maximum unique value always scores 100. Unknown
// entries stay out of the ranking and resolve to the neutral 50.
func percentileRanks(values []float64, known []bool) []float64 {
	scores := make([]float64, len(values))
	for i := range scores {
		scores[i] = neutralPercentile
	}

	type indexed struct {
		idx   int
		value float64
	}
	ranked := make([]indexed, 0, len(values))
	for i, v := range values {
		if known[i] {
			ranked = append(ranked, indexed{idx: i, value: v})
		}
	}
	if len(ranked) == 0 {
		return scores
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].value < ranked[j].value })

	n := float64(len(ranked))
	for i := 0; i < len(ranked); {
		j := i
		for j < len(ranked) && ranked[j].value == ranked[i].value {
			j++
		}
		// 1-based ranks i+1..j averaged across the tie run.
		avgRank := float64(i+1+j) / 2
		score := 100 * avgRank / n
		for k := i; k < j; k++ {
			scores[ranked[k].idx] = score
		}
		i = j
	}

	return scores
}
