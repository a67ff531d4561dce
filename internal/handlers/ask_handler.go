package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/corpus"
	"github.com/karthikyeluripati/aurora-chatbot/internal/llm"
	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
	"github.com/karthikyeluripati/aurora-chatbot/internal/services"
	"github.com/karthikyeluripati/aurora-chatbot/pkg/httputil"
)

// AskHandler handles HTTP requests for question answering.
type AskHandler struct {
	provider      services.CorpusProvider
	answerService *services.AnswerService
	logger        *zap.Logger
}

// NewAskHandler creates a new AskHandler instance.
func NewAskHandler(provider services.CorpusProvider, answerService *services.AnswerService, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		provider:      provider,
		answerService: answerService,
		logger:        logger,
	}
}

// HandleAsk answers a natural language question about member data.
func (h *AskHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Question must not be empty")
		return
	}

	msgCorpus, err := h.provider.Corpus(r.Context())
	if err != nil {
		h.logger.Error("failed to load corpus", zap.Error(err))
		httputil.RespondError(w, upstreamStatus(err), "Failed to fetch messages from API: "+err.Error())
		return
	}

	answer, err := h.answerService.Answer(r.Context(), req.Question, msgCorpus)
	if err != nil {
		h.logger.Error("failed to answer question", zap.Error(err))
		httputil.RespondError(w, upstreamStatus(err), "Error answering question: "+err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.AskResponse{Answer: answer})
}

// upstreamStatus maps pipeline failures to a status code: failures of the
// external collaborators surface as 502, everything else as 500.
func upstreamStatus(err error) int {
	if errors.Is(err, corpus.ErrSourceUnavailable) ||
		errors.Is(err, corpus.ErrProtocol) ||
		errors.Is(err, llm.ErrCompletion) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
