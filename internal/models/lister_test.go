package models

import (
	"reflect"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}
	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}
	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	if err := lister.ListAvailableModels(); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestFilterChatModels(t *testing.T) {
	ids := []string{
		"gpt-4o-mini",
		"gpt-4o",
		"gpt-4o-mini-tts",
		"gpt-4o-audio-preview",
		"gpt-4o-mini-transcribe",
		"text-embedding-3-small",
		"dall-e-3",
		"whisper-1",
		"chatgpt-4o-latest",
	}

	got := filterChatModels(ids)
	want := []string{"gpt-4o-mini", "gpt-4o", "chatgpt-4o-latest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterChatModels = %v, want %v", got, want)
	}
}
