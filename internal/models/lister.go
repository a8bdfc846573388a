package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the chat models usable for glossary and
// translation calls
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY or configure openai.api_key in .slideglot.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := filterChatModels(modelIDs(models.Models))
	sort.Strings(chatModels)

	fmt.Println("Available chat models for glossary/translation:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}
	fmt.Println("\nUse --model to select one (default: gpt-4o-mini)")

	return nil
}

func modelIDs(models []openai.Model) []string {
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids
}

// filterChatModels keeps models that can do chat completions, dropping
// TTS, audio, embedding and image variants
func filterChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		if !strings.Contains(id, "gpt") && !strings.Contains(id, "chat") {
			continue
		}
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "embedding") || strings.Contains(id, "image") ||
			strings.Contains(id, "dall-e") || strings.Contains(id, "transcribe") {
			continue
		}
		chat = append(chat, id)
	}
	return chat
}
