package assistant

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMockClient answers every message with a canned reply. Used when no
// API key is configured so the chat widget keeps working in local
// setups.
func NewMockClient() Client {
	return &mockClient{}
}

func (c *mockClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	// English prompts start with "You are"; German ones with "Du bist".
	if strings.HasPrefix(system, "You are") {
		return "[MOCK MODE] I received your message. The AI key is missing, but everything else works! {{BOOKING_BUTTON}}", nil
	}
	return "[TEST MODUS] Ich habe Ihre Nachricht erhalten. Der AI-Key fehlt noch, aber alles andere funktioniert! {{BOOKING_BUTTON}}", nil
}
