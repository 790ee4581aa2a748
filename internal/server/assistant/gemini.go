package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyReply is returned when the model answers with no text.
var ErrEmptyReply = errors.New("assistant returned an empty reply")

const baseInstruction = "You are the Fruitie AI assistant for an online fresh fruit marketplace " +
	"connecting buyers and sellers. Answer briefly and concretely. "

var pageInstructions = map[Page]string{
	PageBuyer: baseInstruction +
		"The user is a buyer. Help them find fruit, compare seller prices and estimate quantities.",
	PageSeller: baseInstruction +
		"The user is a seller. Help them price produce, find transport options and understand payment methods.",
	PageHome: baseInstruction +
		"The user is browsing the home page. Explain how buying and selling fresh fruit on the platform works.",
}

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiReplier answers prompts with a Gemini model.
type GeminiReplier struct {
	models contentGenerator
	model  string
}

// NewGeminiReplier creates a Gemini API client for apiKey.
func NewGeminiReplier(ctx context.Context, apiKey, model string) (*GeminiReplier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiReplier{models: client.Models, model: model}, nil
}

func (g *GeminiReplier) Reply(ctx context.Context, p Prompt) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(p.Message, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructionFor(p.Page), genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}

	return text, nil
}

func instructionFor(p Page) string {
	if s, ok := pageInstructions[p]; ok {
		return s
	}
	return pageInstructions[PageHome]
}
