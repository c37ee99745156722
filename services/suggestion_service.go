package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/utils"
)

// RefusalMessage is returned locally, without contacting the model, when a
// prompt trips the unhealthy-dieting screen.
const RefusalMessage = "I cannot give extreme dieting advice. Ask me about balanced meals instead."

// Most catalog entries the system prompt will carry.
const maxPromptEntries = 50

type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// SuggestionService is the conversational assistant. It grounds the model
// in a catalog excerpt and forwards the conversation as-is; failures from
// the endpoint surface to the caller with no retry.
type SuggestionService struct {
	llm     llms.Model
	catalog *CatalogService
}

func NewSuggestionService(llm llms.Model, catalog *CatalogService) *SuggestionService {
	return &SuggestionService{llm: llm, catalog: catalog}
}

func (s *SuggestionService) Ask(ctx context.Context, history []ChatMessage, message string) (string, error) {
	if utils.IsUnhealthyPrompt(message) {
		return RefusalMessage, nil
	}

	prompt, err := s.systemPrompt()
	if err != nil {
		return "", err
	}

	msgs := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, prompt),
	}
	for _, m := range history {
		role := schema.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Content))
	}
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeHuman, message))

	resp, err := s.llm.GenerateContent(ctx, msgs,
		llms.WithMaxTokens(250),
		llms.WithTemperature(0.6),
	)
	if err != nil {
		return "", fmt.Errorf("suggestion service: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", errors.New("suggestion service returned an empty reply")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func (s *SuggestionService) systemPrompt() (string, error) {
	entries, err := s.catalog.Entries()
	if err != nil {
		return "", err
	}
	if len(entries) > maxPromptEntries {
		entries = entries[:maxPromptEntries]
	}

	var sb strings.Builder
	sb.WriteString("You are a friendly nutrition assistant. ")
	sb.WriteString("Only use this dataset when giving food suggestions:\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "- %s (%s): %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
			e.DisplayName, e.Category, e.Calories, e.Protein, e.Carbs, e.Fat)
	}
	return sb.String(), nil
}
