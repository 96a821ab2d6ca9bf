package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/dom/football-dashboard/internal/domain"
)

// Row is one player of the loaded table. Cells are kept as raw CSV text and
// coerced on access; a cell that is absent, empty, or not parseable as a
// finite number is treated as missing, never as an error. Rows are immutable
// after the table is built.
type Row struct {
	// ID is the parsed playerId primary key.
	ID int

	// PositionGroup and Radar are derived once at load time.
	PositionGroup domain.PositionGroup
	Radar         domain.RadarScores

	cells map[string]string
}

// Text returns the raw cell value, reporting false for absent or empty cells.
func (r *Row) Text(col string) (string, bool) {
	v, ok := r.cells[col]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Float coerces a cell to a finite float64. Non-numeric text, NaN and Inf
// all count as missing.
func (r *Row) Float(col string) (float64, bool) {
	raw, ok := r.Text(col)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Int coerces a cell to an int. The cleaning pipeline writes integer columns
// that carry nulls as floats ("27.0"), so this parses through float first.
func (r *Row) Int(col string) (int, bool) {
	v, ok := r.Float(col)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// FloatPtr returns the cell as a nullable float for response projections.
func (r *Row) FloatPtr(col string) *float64 {
	if v, ok := r.Float(col); ok {
		return &v
	}
	return nil
}

// IntPtr returns the cell as a nullable int for response projections.
func (r *Row) IntPtr(col string) *int {
	if v, ok := r.Int(col); ok {
		return &v
	}
	return nil
}

// TextPtr returns the cell as a nullable string for response projections.
func (r *Row) TextPtr(col string) *string {
	if v, ok := r.Text(col); ok {
		return &v
	}
	return nil
}

// DisplayName falls back from the primary name column to the alternate one
// kept by the upstream two-source merge, then to "Unknown".
func (r *Row) DisplayName() string {
	if name, ok := r.Text(ColName); ok {
		return name
	}
	if name, ok := r.Text(ColAltName); ok {
		return name
	}
	return "Unknown"
}

const teamSuffixDelimiter = " ~ "

// PrimaryTeam returns the team name truncated at the loan-club suffix the
// source occasionally embeds after " ~ ". Only the primary club is ever
// matched or displayed.
func (r *Row) PrimaryTeam() (string, bool) {
	name, ok := r.Text(ColTeamName)
	if !ok {
		return "", false
	}
	if idx := strings.Index(name, teamSuffixDelimiter); idx >= 0 {
		name = name[:idx]
	}
	return name, true
}

// Table is the process-wide read-only player table. It is built exactly once
// at startup and never mutated afterwards, so any number of concurrent
// readers may share it without locking.
type Table struct {
	rows    []*Row
	columns map[string]struct{}
	byID    map[int]*Row
}

// Rows returns a fresh slice of the table's rows. Callers may reorder or
// filter the returned slice freely; the rows themselves are shared and must
// not be mutated.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// ByID looks up a row by its playerId.
func (t *Table) ByID(id int) (*Row, bool) {
	row, ok := t.byID[id]
	return row, ok
}

// HasColumn reports whether the loaded schema carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Len returns the number of loaded rows.
func (t *Table) Len() int {
	return len(t.rows)
}
