package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/senmay/Geo-Asystent-AI/internal/domain"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

//go:generate mockgen -source=classifier.go -destination=mocks/mock.go

// CompletionClient abstracts the chat completions transport for testing.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string, jsonOnly bool) (string, error)
}

// Classifier maps free Polish text onto the closed intent set. Stateless
// across calls; safe for concurrent use.
type Classifier struct {
	client CompletionClient
	logger *slog.Logger
}

func NewClassifier(client CompletionClient, logger *slog.Logger) *Classifier {
	return &Classifier{client: client, logger: logger}
}

// Classify returns the typed intent for a query. A malformed model response
// gets exactly one stricter re-prompt before falling back to chat; transport
// failures surface as e.ErrLLMUnavailable for the dispatcher to translate.
func (c *Classifier) Classify(ctx context.Context, query string) (domain.Intent, error) {
	const op = "llm.Classifier.Classify"

	if strings.TrimSpace(query) == "" {
		return domain.ChatIntent(), nil
	}

	traceID := uuid.NewString()
	log := c.logger.With(slog.String("op", op), slog.String("trace_id", traceID))

	log.Info("classifying intent", slog.String("query", query))

	text, err := c.client.Complete(ctx, classificationSystemPrompt, query, true)
	if err != nil {
		if errors.Is(err, e.ErrLLMMalformed) {
			return c.retry(ctx, log, query)
		}
		log.Error("llm completion failed", slog.Any("error", err))
		return domain.Intent{}, err
	}

	intent, err := ParseIntent(text)
	if err != nil {
		log.Warn("intent parse failed, re-prompting once",
			slog.String("response", truncate(text, 200)),
			slog.Any("error", err),
		)
		return c.retry(ctx, log, query)
	}

	log.Info("intent classified", slog.String("intent", string(intent.Type)))
	return intent, nil
}

func (c *Classifier) retry(ctx context.Context, log *slog.Logger, query string) (domain.Intent, error) {
	text, err := c.client.Complete(ctx, classificationSystemPrompt+strictRetrySuffix, query, true)
	if err != nil {
		if errors.Is(err, e.ErrLLMMalformed) {
			log.Warn("retry still malformed, falling back to chat")
			return domain.ChatIntent(), nil
		}
		log.Error("llm retry failed", slog.Any("error", err))
		return domain.Intent{}, err
	}

	intent, err := ParseIntent(text)
	if err != nil {
		log.Warn("retry parse failed, falling back to chat",
			slog.String("response", truncate(text, 200)),
		)
		return domain.ChatIntent(), nil
	}

	log.Info("intent classified on retry", slog.String("intent", string(intent.Type)))
	return intent, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
