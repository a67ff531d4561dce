package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/llm"
	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
	"github.com/karthikyeluripati/aurora-chatbot/internal/qa"
)

func newTestAnswerService(completer llm.Completer) *AnswerService {
	return NewAnswerService(qa.NewExtractor(nil), qa.NewContextBuilder(), completer, zap.NewNop())
}

// mixedCorpus is three Armand Dupont messages plus noise from other users.
func mixedCorpus() models.Corpus {
	corpus := models.Corpus{
		{UserName: "Armand Dupont", Text: "Just landed in Paris", Timestamp: "2024-02-01T10:00:00+00:00"},
		{UserName: "Armand Dupont", Text: "Paris was lovely, heading home", Timestamp: "2024-02-05T10:00:00+00:00"},
		{UserName: "Armand Dupont", Text: "Book me the usual suite next time", Timestamp: "2024-02-07T10:00:00+00:00"},
	}
	for i := 0; i < 50; i++ {
		corpus = append(corpus, models.Message{
			UserName:  "Vikram Desai",
			Text:      fmt.Sprintf("unrelated chatter %d", i),
			Timestamp: "2024-02-02T10:00:00+00:00",
		})
	}
	return corpus
}

func TestAnswerService(t *testing.T) {
	ctx := context.Background()

	t.Run("question naming a user narrows the context to that user", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		mock.Response = "Armand traveled to Paris."
		svc := newTestAnswerService(mock)

		answer, err := svc.Answer(ctx, "What cities has Armand Dupont traveled to?", mixedCorpus())
		require.NoError(t, err)
		assert.Equal(t, "Armand traveled to Paris.", answer)

		assert.Contains(t, mock.LastUserPrompt, "=== Armand Dupont ===")
		assert.Contains(t, mock.LastUserPrompt, "Just landed in Paris")
		assert.NotContains(t, mock.LastUserPrompt, "unrelated chatter")
		assert.NotContains(t, mock.LastUserPrompt, "Vikram Desai")
	})

	t.Run("unknown name falls back to the full corpus without failing", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		mock.Response = "No information about Beatrice."
		svc := newTestAnswerService(mock)

		answer, err := svc.Answer(ctx, "Where does Beatrice spend her summers?", mixedCorpus())
		require.NoError(t, err)
		assert.NotEmpty(t, answer)

		// The full corpus is the context when no known name was extracted.
		assert.Contains(t, mock.LastUserPrompt, "Vikram Desai")
	})

	t.Run("known name missing from the corpus notes the miss and keeps the full corpus", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		svc := newTestAnswerService(mock)

		_, err := svc.Answer(ctx, "What does Thiago like for breakfast?", mixedCorpus())
		require.NoError(t, err)

		assert.Contains(t, mock.LastUserPrompt, "no messages were found for Thiago")
		assert.Contains(t, mock.LastUserPrompt, "Armand Dupont")
	})

	t.Run("prompt embeds question and context with the fixed instructions", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		svc := newTestAnswerService(mock)

		_, err := svc.Answer(ctx, "What cities has Armand traveled to?", mixedCorpus())
		require.NoError(t, err)

		assert.Contains(t, mock.LastSystemPrompt, "Answer based ONLY on the messages provided")
		assert.Contains(t, mock.LastUserPrompt, "Question: What cities has Armand traveled to?")
		assert.Contains(t, mock.LastUserPrompt, "Member Messages:")
	})

	t.Run("answer is returned trimmed but otherwise verbatim", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		mock.Response = "  spaced out answer\n"
		svc := newTestAnswerService(mock)

		answer, err := svc.Answer(ctx, "anything?", mixedCorpus())
		require.NoError(t, err)
		assert.Equal(t, "spaced out answer", answer)
	})

	t.Run("completion failure propagates wrapped", func(t *testing.T) {
		mock := llm.NewMockCompleter()
		mock.Err = fmt.Errorf("%w: rate limited", llm.ErrCompletion)
		svc := newTestAnswerService(mock)

		_, err := svc.Answer(ctx, "anything?", mixedCorpus())
		assert.ErrorIs(t, err, llm.ErrCompletion)
	})
}

func TestStatsService(t *testing.T) {
	ctx := context.Background()

	t.Run("counts totals and per-user messages", func(t *testing.T) {
		svc := NewStatsService(staticProvider{corpus: mixedCorpus()})

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 53, stats.TotalMessages)
		assert.Equal(t, 2, stats.UniqueUsers)
		assert.Equal(t, 3, stats.Users["Armand Dupont"])
		assert.Equal(t, 50, stats.Users["Vikram Desai"])
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		svc := NewStatsService(staticProvider{err: fmt.Errorf("source down")})
		_, err := svc.Stats(ctx)
		assert.Error(t, err)
	})
}

type staticProvider struct {
	corpus models.Corpus
	err    error
}

func (p staticProvider) Corpus(ctx context.Context) (models.Corpus, error) {
	return p.corpus, p.err
}
