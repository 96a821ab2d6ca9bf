package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dom/football-dashboard/internal/domain"
	"github.com/dom/football-dashboard/internal/service"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List handles GET /api/players. Page and limit are validated here so
// out-of-range values never reach the query engine.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(q.Get("page"), defaultPage)
	if err != nil || page < 1 {
		http.Error(w, "page must be a positive integer", http.StatusBadRequest)
		return
	}

	limit, err := queryInt(q.Get("limit"), defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		http.Error(w, fmt.Sprintf("limit must be between 1 and %d", maxLimit), http.StatusBadRequest)
		return
	}

	params := service.ListParams{
		Page:          page,
		Limit:         limit,
		Search:        q.Get("search"),
		PositionGroup: q.Get("positionGroup"),
		Team:          q.Get("team"),
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
	}

	players, total := h.playerService.List(params)

	respondJSON(w, http.StatusOK, domain.PlayerPage{
		Players:    players,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	})
}

// Get handles GET /api/players/{id}.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	player, err := h.playerService.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			http.Error(w, fmt.Sprintf("Player with ID %d not found", id), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get player", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// GetRadar handles GET /api/players/{id}/radar.
func (h *PlayerHandler) GetRadar(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	radar, err := h.playerService.GetRadar(id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			http.Error(w, fmt.Sprintf("Player with ID %d not found", id), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get radar data", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, radar)
}

func playerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "player id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
