package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/llm"
	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
	"github.com/karthikyeluripati/aurora-chatbot/internal/qa"
)

const systemPrompt = `You are a helpful assistant answering questions about luxury concierge service members.

Key rules:
- Answer based ONLY on the messages provided
- Be specific: include dates, locations, preferences when available
- If a user name in the question doesn't exist, mention which similar names ARE available
- List multiple relevant details when found
- If truly no information exists, say so clearly`

// AnswerService runs the retrieval-and-context pipeline and delegates answer
// synthesis to the completion capability.
type AnswerService struct {
	extractor *qa.Extractor
	builder   *qa.ContextBuilder
	completer llm.Completer
	logger    *zap.Logger
}

// NewAnswerService creates an AnswerService.
func NewAnswerService(extractor *qa.Extractor, builder *qa.ContextBuilder, completer llm.Completer, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		extractor: extractor,
		builder:   builder,
		completer: completer,
		logger:    logger,
	}
}

// Answer answers a natural-language question against the given corpus.
//
// Members named in the question narrow the working set; a name that matches
// nothing in the corpus is not a failure — the full corpus becomes the
// context and the prompt notes the miss, so the model can point at similar
// names instead. Completion failures come back wrapped in llm.ErrCompletion.
func (s *AnswerService) Answer(ctx context.Context, question string, corpus models.Corpus) (string, error) {
	names := s.extractor.Extract(question)

	workingSet := corpus
	var missNote string
	if len(names) > 0 {
		filtered, matched := qa.Filter(corpus, names)
		if matched {
			s.logger.Info("filtered corpus for question",
				zap.Strings("names", names),
				zap.Int("messages", len(filtered)))
			workingSet = filtered
		} else {
			s.logger.Warn("no messages found for extracted names",
				zap.Strings("names", names))
			missNote = fmt.Sprintf("\nNote: no messages were found for %s; the full message set is shown instead.\n", strings.Join(names, ", "))
		}
	}

	contextBlock := s.builder.Build(workingSet)

	userPrompt := fmt.Sprintf(`Question: %s
%s
Member Messages:
%s

Provide a helpful answer based on the messages above.`, question, missNote, contextBlock)

	answer, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
