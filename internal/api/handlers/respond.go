package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/football-dashboard/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithComponent("handlers").WithError(err).Error("failed to encode response")
	}
}
