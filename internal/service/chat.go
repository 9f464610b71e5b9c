package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/awesner/wesner-corporate-site/internal/assistant"
	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/logger"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

const systemPromptEN = `You are a helpful AI assistant for the "Wesner Software" website.
Answer politely in English.
Use ONLY the following information to answer user questions.

RULES:
1. If the answer is not in the text, ask the user to use the contact form.
2. CRITICAL: If the user asks for an appointment, a meeting, a demo, or wants to talk to someone, you MUST append the tag "{{BOOKING_BUTTON}}" to the end of your response.
3. Do not just describe the contact form if they ask for a meeting - give them the button via the tag.

--- WEBSITE CONTENT ---
%s`

const systemPromptDE = `Du bist ein hilfreicher KI-Assistent für die Website der "Wesner Softwareentwicklung".
Antworte immer höflich auf Deutsch.
Nutze NUR die folgenden Informationen, um Fragen zu beantworten.

REGELN:
1. Wenn du die Antwort nicht in den Informationen findest, bitte den Nutzer, das Kontaktformular zu verwenden.
2. KRITISCH: Wenn der Benutzer einen Termin wünscht oder danach fragt, MUSST du am Ende deiner Antwort zwingend den Tag "{{BOOKING_BUTTON}}" anfügen.
3. Erzähle nicht nur vom Kontaktformular, wenn nach einem Termin gefragt wird, sondern gib diesen Tag aus.

--- WEBSITE INHALT ---
%s`

type (
	// ChatLog persists the conversation transcript.
	ChatLog interface {
		SaveChatMessage(ctx context.Context, sessionID, role, content string) error
	}

	ChatService struct {
		log     ChatLog
		client  assistant.Client
		dataDir string
		logger  *logger.Logger
	}
)

func NewChatService(log ChatLog, client assistant.Client, dataDir string, lg *logger.Logger) *ChatService {
	return &ChatService{log: log, client: client, dataDir: dataDir, logger: lg}
}

// Respond runs one chat turn: persist the user message, ask the
// assistant, persist the reply. Transcript writes are best effort; a
// database hiccup must not kill the conversation.
func (svc *ChatService) Respond(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.NewValidationError("message", "message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := svc.log.SaveChatMessage(ctx, sessionID, domain.ChatRoleUser, message); err != nil {
		svc.logger.Error("failed to persist user chat message", "session_id", sessionID, "err", err)
	}

	messages := make([]assistant.Message, 0, len(req.History)+1)
	for _, turn := range req.History {
		messages = append(messages, assistant.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, assistant.Message{Role: domain.ChatRoleUser, Content: message})

	reply, err := svc.client.Complete(ctx, svc.systemPrompt(req.Locale), messages)
	if err != nil {
		return nil, err
	}

	if err := svc.log.SaveChatMessage(ctx, sessionID, domain.ChatRoleAssistant, reply); err != nil {
		svc.logger.Error("failed to persist assistant chat message", "session_id", sessionID, "err", err)
	}

	return &domain.ChatResponse{Reply: reply, SessionID: sessionID}, nil
}

func (svc *ChatService) systemPrompt(locale string) string {
	context := svc.siteContent(locale)
	if locale == "en" {
		return fmt.Sprintf(systemPromptEN, context)
	}
	return fmt.Sprintf(systemPromptDE, context)
}

// siteContent assembles the grounding context from the locale JSON
// files. Missing files are tolerated; the assistant just knows less.
func (svc *ChatService) siteContent(locale string) string {
	if locale != "en" {
		locale = "de"
	}

	read := func(parts ...string) string {
		data, err := os.ReadFile(filepath.Join(append([]string{svc.dataDir}, parts...)...))
		if err != nil {
			return ""
		}
		return string(data)
	}

	products := read("products", "products."+locale+".json")
	services := read("services", "services."+locale+".json")
	blog := read("blog", "articles."+locale+".json")

	return fmt.Sprintf("PRODUCTS INFO:\n%s\n\nSERVICES INFO:\n%s\n\nBLOG ARTICLES:\n%s", products, services, blog)
}
