package handlers

import (
	"net/http"

	"github.com/dom/football-dashboard/internal/service"
)

// ReferenceHandler serves the static filter catalogs backing the dashboard
// dropdowns.
type ReferenceHandler struct {
	playerService *service.PlayerService
}

func NewReferenceHandler(playerService *service.PlayerService) *ReferenceHandler {
	return &ReferenceHandler{playerService: playerService}
}

// Positions handles GET /api/positions.
func (h *ReferenceHandler) Positions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.playerService.Positions())
}

// Teams handles GET /api/teams.
func (h *ReferenceHandler) Teams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.playerService.Teams())
}
