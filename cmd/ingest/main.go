// Command ingest archives a cleaned player CSV into the Postgres snapshot
// store. The serving path never touches the database; this exists so the
// population history survives the pipeline overwriting the CSV.
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/dom/football-dashboard/internal/archive"
	"github.com/dom/football-dashboard/internal/config"
	"github.com/dom/football-dashboard/internal/dataset"
	"github.com/dom/football-dashboard/internal/logger"
)

func main() {
	dataPath := flag.String("data", "", "path to the cleaned player CSV (defaults to DATA_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("failed to load config: %v", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	path := *dataPath
	if path == "" {
		path = cfg.DataPath
	}

	table, err := dataset.Load(path)
	if err != nil {
		log.Fatalf("failed to load player dataset: %v", err)
	}

	db, err := archive.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to archive database: %v", err)
	}
	store := archive.NewStore(db)

	run := archive.NewRun(path, table)

	snapshots := make([]archive.PlayerSnapshot, 0, table.Len())
	for _, row := range table.Rows() {
		snapshot, err := archive.SnapshotFromRow(row)
		if err != nil {
			log.WithField("player_id", row.ID).WithError(err).Warn("skipping unconvertible row")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := store.SaveRun(context.Background(), run, snapshots); err != nil {
		log.Fatalf("failed to archive run: %v", err)
	}

	log.WithFields(logrus.Fields{
		"run_id":  run.ID,
		"source":  path,
		"players": len(snapshots),
	}).Info("dataset snapshot archived")
}
