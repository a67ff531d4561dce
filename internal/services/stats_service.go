package services

import (
	"context"
	"fmt"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// CorpusProvider hands out the current corpus, cached or freshly fetched.
type CorpusProvider interface {
	Corpus(ctx context.Context) (models.Corpus, error)
}

// StatsService computes descriptive statistics over the corpus.
type StatsService struct {
	provider CorpusProvider
}

// NewStatsService creates a StatsService.
func NewStatsService(provider CorpusProvider) *StatsService {
	return &StatsService{provider: provider}
}

// Stats returns total message count, unique user count and per-user message
// counts for the current corpus.
func (s *StatsService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	corpus, err := s.provider.Corpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus for stats: %w", err)
	}

	users := make(map[string]int)
	for _, msg := range corpus {
		users[msg.UserName]++
	}

	return &models.StatsResponse{
		TotalMessages: len(corpus),
		UniqueUsers:   len(users),
		Users:         users,
	}, nil
}
