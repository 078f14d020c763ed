package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetDirectoryStats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(StatsResponse{
		TotalMembers: stats.TotalMembers,
		TotalPages:   stats.TotalPages,
	})
}
