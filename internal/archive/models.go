package archive

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IngestRun records one archival of a cleaned dataset. The pipeline
// re-scrapes and re-cleans periodically and keeps only the newest CSV, so
// runs are the only durable history of how the population evolved.
type IngestRun struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SourcePath string    `json:"sourcePath" gorm:"not null"`
	RowCount   int       `json:"rowCount" gorm:"not null"`
	IngestedAt time.Time `json:"ingestedAt" gorm:"not null"`

	Players []PlayerSnapshot `json:"-" gorm:"foreignKey:RunID"`
}

// PlayerSnapshot is one player row as it stood in a given run. Identity and
// market fields are promoted to columns for querying; the radar block and
// the raw numeric stats go into jsonb payloads.
type PlayerSnapshot struct {
	ID    uint      `json:"id" gorm:"primaryKey"`
	RunID uuid.UUID `json:"runId" gorm:"type:uuid;index;not null"`

	PlayerID      int    `json:"playerId" gorm:"index;not null"`
	Name          string `json:"name" gorm:"not null"`
	TeamName      string `json:"teamName"`
	Position      string `json:"position"`
	PositionGroup string `json:"positionGroup"`

	MarketValueCurrent  *float64 `json:"marketValueCurrent"`
	MarketValuePrevious *float64 `json:"marketValuePrevious"`
	Rating              *float64 `json:"rating"`

	Radar datatypes.JSON `json:"radar" gorm:"type:jsonb"`
	Stats datatypes.JSON `json:"stats" gorm:"type:jsonb"`
}
