package api

import (
	"net/http"

	"log/slog"

	"github.com/akash-insiders/community-hub/pkg/repository"
)

type StatsHandler struct {
	statsRepo repository.StatsRepo
}

func NewStatsHandler(sr repository.StatsRepo) *StatsHandler {
	return &StatsHandler{statsRepo: sr}
}

// Stats returns the dashboard aggregates, recomputed on every call.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsRepo.Stats(r.Context())
	if err != nil {
		logger.Error("stats", slog.Any("err", err))
		writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}
