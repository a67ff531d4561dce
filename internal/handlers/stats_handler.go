package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/services"
	"github.com/karthikyeluripati/aurora-chatbot/pkg/httputil"
)

// StatsHandler handles HTTP requests for corpus statistics.
type StatsHandler struct {
	statsService *services.StatsService
	logger       *zap.Logger
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(statsService *services.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// HandleStats returns dataset statistics for the current corpus.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		httputil.RespondError(w, upstreamStatus(err), "Failed to fetch messages from API: "+err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}
