package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dom/football-dashboard/internal/domain"
	"github.com/dom/football-dashboard/internal/logger"
)

// Load reads the cleaned player CSV at path and builds the immutable table,
// deriving position groups and radar percentiles for every row. A missing
// or unreadable file is a hard error; malformed cells inside the file are
// not (they degrade to missing values on access).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	logger.WithComponent("dataset").WithFields(logrus.Fields{
		"path": path,
		"rows": table.Len(),
	}).Info("player dataset loaded")

	return table, nil
}

// Read parses CSV content into a table. Split out from Load so tests can
// build tables from in-memory fixtures.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset has no header row")
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]struct{}, len(header))
	for _, name := range header {
		columns[name] = struct{}{}
	}

	log := logger.WithComponent("dataset")

	table := &Table{
		columns: columns,
		byID:    make(map[int]*Row),
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		cells := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) && record[i] != "" {
				cells[name] = record[i]
			}
		}

		row := &Row{cells: cells}

		id, ok := row.Int(ColPlayerID)
		if !ok {
			log.WithField("raw_id", cells[ColPlayerID]).Warn("skipping row without a parseable playerId")
			continue
		}
		row.ID = id

		if position, ok := row.Text(ColPosition); ok {
			row.PositionGroup = domain.GroupForPosition(position)
		} else {
			row.PositionGroup = domain.GroupUnknown
		}

		// Uniqueness is assumed upstream. A duplicate id replaces the
		// earlier row in place, so the last one wins without disturbing
		// load order.
		if existing, ok := table.byID[id]; ok {
			for i, r := range table.rows {
				if r == existing {
					table.rows[i] = row
					break
				}
			}
		} else {
			table.rows = append(table.rows, row)
		}
		table.byID[id] = row
	}

	deriveRadar(table)

	return table, nil
}
