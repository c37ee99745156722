package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
)

// fakeModel records the messages it receives and replies with a canned
// string or error.
type fakeModel struct {
	reply    string
	err      error
	calls    int
	lastMsgs []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.lastMsgs = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func TestAsk_UnhealthyPromptRefusedWithoutModelCall(t *testing.T) {
	model := &fakeModel{reply: "should not be used"}
	svc := NewSuggestionService(model, testCatalog(
		entry("Oatmeal", models.CategoryBreakfast, 150, 5, 3),
	))

	reply, err := svc.Ask(context.Background(), nil, "how do I starve myself thin")
	require.NoError(t, err)
	require.Equal(t, RefusalMessage, reply)
	require.Zero(t, model.calls)
}

func TestAsk_GroundsSystemPromptInCatalog(t *testing.T) {
	model := &fakeModel{reply: "  Try the oatmeal.  "}
	svc := NewSuggestionService(model, testCatalog(
		entry("Oatmeal", models.CategoryBreakfast, 150, 5, 3),
		entry("Chicken", models.CategoryDinner, 335, 38, 14),
	))

	history := []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}
	reply, err := svc.Ask(context.Background(), history, "what should I eat?")
	require.NoError(t, err)
	require.Equal(t, "Try the oatmeal.", reply)

	require.Len(t, model.lastMsgs, 4) // system + two history turns + question
	require.Equal(t, schema.ChatMessageTypeSystem, model.lastMsgs[0].Role)
	system := model.lastMsgs[0].Parts[0].(llms.TextContent).Text
	require.Contains(t, system, "Oatmeal")
	require.Contains(t, system, "Chicken")
	require.Equal(t, schema.ChatMessageTypeHuman, model.lastMsgs[1].Role)
	require.Equal(t, schema.ChatMessageTypeAI, model.lastMsgs[2].Role)
	require.Equal(t, schema.ChatMessageTypeHuman, model.lastMsgs[3].Role)
}

func TestAsk_ModelErrorSurfaces(t *testing.T) {
	endpointErr := errors.New("endpoint down")
	svc := NewSuggestionService(&fakeModel{err: endpointErr}, testCatalog(
		entry("Oatmeal", models.CategoryBreakfast, 150, 5, 3),
	))

	_, err := svc.Ask(context.Background(), nil, "dinner ideas?")
	require.ErrorIs(t, err, endpointErr)
}

func TestAsk_EmptyReplyIsAnError(t *testing.T) {
	svc := NewSuggestionService(&fakeModel{reply: "   "}, testCatalog(
		entry("Oatmeal", models.CategoryBreakfast, 150, 5, 3),
	))

	_, err := svc.Ask(context.Background(), nil, "dinner ideas?")
	require.Error(t, err)
}

func TestAsk_DatasetUnavailable(t *testing.T) {
	model := &fakeModel{reply: "unused"}
	svc := NewSuggestionService(model, NewCatalogService("missing.csv", CatalogOptions{}, discardLogger()))

	_, err := svc.Ask(context.Background(), nil, "dinner ideas?")
	require.ErrorIs(t, err, ErrDatasetUnavailable)
	require.Zero(t, model.calls)
}
