package llm

import (
	"context"
	"log/slog"
	"strings"
)

// ChatService generates conversational Polish replies for non-spatial
// queries.
type ChatService struct {
	client CompletionClient
	logger *slog.Logger
}

func NewChatService(client CompletionClient, logger *slog.Logger) *ChatService {
	return &ChatService{client: client, logger: logger}
}

func (s *ChatService) Reply(ctx context.Context, query string) (string, error) {
	const op = "llm.ChatService.Reply"

	if strings.TrimSpace(query) == "" {
		return "Proszę zadać pytanie, a postaram się pomóc!", nil
	}

	text, err := s.client.Complete(ctx, chatSystemPrompt, query, false)
	if err != nil {
		s.logger.Error("chat completion failed", slog.String("op", op), slog.Any("error", err))
		return "", err
	}

	s.logger.Info("chat response generated",
		slog.String("op", op),
		slog.Int("length", len(text)),
	)
	return text, nil
}

// FallbackResponse returns a static Polish reply for a failure class, used
// when the LLM itself is the failing component.
func FallbackResponse(kind string) string {
	responses := map[string]string{
		"timeout":        "Przepraszam, odpowiedź trwa zbyt długo. Spróbuj zadać prostsze pytanie lub spróbuj ponownie za chwilę.",
		"unavailable":    "Wystąpił problem z usługą AI. Spróbuj ponownie później.",
		"classification": "Nie rozumiem tego zapytania. Spróbuj przeformułować lub zadaj pytanie o dane GIS.",
		"general":        "Wystąpił nieoczekiwany błąd. Spróbuj ponownie lub zadaj inne pytanie.",
	}

	base, ok := responses[kind]
	if !ok {
		base = responses["general"]
	}
	return base + "\n\nMogę pomóc z:\n• Wyświetlaniem warstw GIS\n• Wyszukiwaniem działek\n• Pytaniami o dane przestrzenne"
}
