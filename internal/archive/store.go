package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/dom/football-dashboard/internal/dataset"
)

const snapshotBatchSize = 500

// statColumns is the raw numeric payload archived per player: every radar
// source column plus rating and playing time, so a run can be re-ranked
// later without the original CSV.
var statColumns = []string{
	dataset.ColRating, dataset.ColAppearances, dataset.ColMinutesPlayed,
	dataset.ColMatchesStarted,
	dataset.ColGoals, dataset.ColExpectedGoals, dataset.ColTotalShots,
	dataset.ColShotsOnTarget, dataset.ColGoalConversionPct, dataset.ColBigChancesMissed,
	dataset.ColAssists, dataset.ColExpectedAssists, dataset.ColKeyPasses,
	dataset.ColAccuratePassesPct, dataset.ColAccurateFinalThirdPasses, dataset.ColBigChancesCreated,
	dataset.ColSuccessfulDribbles, dataset.ColSuccessfulDribblesPct,
	dataset.ColPossessionWonAttThird, dataset.ColTouches,
	dataset.ColTackles, dataset.ColTacklesWon, dataset.ColInterceptions,
	dataset.ColClearances, dataset.ColBlockedShots, dataset.ColBallRecovery,
	dataset.ColGroundDuelsWon, dataset.ColGroundDuelsWonPct,
	dataset.ColAerialDuelsWon, dataset.ColAerialDuelsWonPct,
	dataset.ColTotalDuelsWon, dataset.ColTotalDuelsWonPct,
}

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&IngestRun{}, &PlayerSnapshot{}); err != nil {
		return nil, err
	}

	return db, nil
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveRun persists a run and its snapshots in one transaction.
func (s *Store) SaveRun(ctx context.Context, run *IngestRun, snapshots []PlayerSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to create ingest run: %w", err)
		}
		if len(snapshots) == 0 {
			return nil
		}
		for i := range snapshots {
			snapshots[i].RunID = run.ID
		}
		if err := tx.CreateInBatches(snapshots, snapshotBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create player snapshots: %w", err)
		}
		return nil
	})
}

// LatestRun returns the most recent run header, or gorm.ErrRecordNotFound.
func (s *Store) LatestRun(ctx context.Context) (*IngestRun, error) {
	var run IngestRun
	err := s.db.WithContext(ctx).Order("ingested_at DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// NewRun builds the run header for a loaded table.
func NewRun(sourcePath string, table *dataset.Table) *IngestRun {
	return &IngestRun{
		ID:         uuid.New(),
		SourcePath: sourcePath,
		RowCount:   table.Len(),
		IngestedAt: time.Now().UTC(),
	}
}

// SnapshotFromRow converts one loaded row into its archival form. The
// conversion is pure; only present numeric stats enter the jsonb payload.
func SnapshotFromRow(row *dataset.Row) (PlayerSnapshot, error) {
	radar, err := json.Marshal(row.Radar)
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("failed to marshal radar block: %w", err)
	}

	stats := make(map[string]float64)
	for _, col := range statColumns {
		if v, ok := row.Float(col); ok {
			stats[col] = v
		}
	}
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return PlayerSnapshot{}, fmt.Errorf("failed to marshal stats payload: %w", err)
	}

	team, _ := row.PrimaryTeam()
	position, _ := row.Text(dataset.ColPosition)

	return PlayerSnapshot{
		PlayerID:            row.ID,
		Name:                row.DisplayName(),
		TeamName:            team,
		Position:            position,
		PositionGroup:       string(row.PositionGroup),
		MarketValueCurrent:  row.FloatPtr(dataset.ColMarketValueCurrent),
		MarketValuePrevious: row.FloatPtr(dataset.ColMarketValuePrevious),
		Rating:              row.FloatPtr(dataset.ColRating),
		Radar:               radar,
		Stats:               statsJSON,
	}, nil
}
