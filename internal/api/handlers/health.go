package handlers

import "net/http"

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Status handles GET / as the liveness payload consumed by the frontend.
func Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "Football Player Dashboard API is running",
	})
}
