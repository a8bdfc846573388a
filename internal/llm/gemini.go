package llm

import (
	"context"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient implements ChatClient on the Google Gemini API
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new Gemini chat client
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ExternalServiceError{Provider: "Gemini", Err: fmt.Errorf("API key not found")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, &ExternalServiceError{Provider: "Gemini", Err: err}
	}

	return &GeminiClient{client: client}, nil
}

// Complete performs one blocking generate-content call
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.JSONOnly {
		config.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	res, err := c.client.Models.GenerateContent(ctx, req.Model, []*genai.Content{
		genai.NewContentFromText(req.User, genai.RoleUser),
	}, config)
	if err != nil {
		return "", &ExternalServiceError{Provider: "Gemini", Err: err}
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", &ExternalServiceError{Provider: "Gemini", Err: fmt.Errorf("no completion returned")}
	}

	return text, nil
}
