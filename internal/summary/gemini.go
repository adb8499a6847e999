package summary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "gemini-1.5-flash"

// Gemini implements Generator on Google's generative-text API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds the client. The API key is required; the model falls
// back to DefaultModel when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key: set GEMINI_API_KEY or pass it explicitly")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Summarize builds the bounded payload and asks the model for the narrative
// paragraph. Service failures surface as one wrapped descriptive error.
func (g *Gemini) Summarize(ctx context.Context, req Request) (string, error) {
	payload, err := BuildPayload(req)
	if err != nil {
		return "", err
	}
	if payload == "" {
		return NoActivitiesMessage, nil
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(req, payload)), nil)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %v", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
