package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hyunsang-coder/slideglot/internal/document"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestDeck builds a small two-slide deck with text, a table and a note
func CreateTestDeck() *document.Deck {
	return &document.Deck{
		Source: "test.pptx",
		Slides: []document.Slide{
			{
				Index: 0,
				Title: "런칭 개요",
				Blocks: []document.Block{
					{
						Kind:         document.KindText,
						ShapeID:      "3",
						Lines:        []string{"Battle Royale 모드 소개", "KPI 목표 설정"},
						IndentLevels: []int{0, 1},
					},
					{
						Kind:      document.KindTable,
						ShapeID:   "5",
						Rows:      [][]string{{"항목", "수치"}, {"DAU", "1.2M"}},
						HasHeader: true,
					},
				},
			},
			{
				Index: 1,
				Title: "다음 단계",
				Blocks: []document.Block{
					{Kind: document.KindText, ShapeID: "2", Lines: []string{"GDC2025 발표 준비"}},
					{Kind: document.KindNote, Text: "발표자 노트"},
				},
			},
		},
	}
}

// CreateTestDeckFile writes the standard test deck to a JSON file and
// returns its path
func CreateTestDeckFile(t *testing.T, dir string) string {
	t.Helper()

	deck := CreateTestDeck()
	path := filepath.Join(dir, "deck.json")
	if err := deck.Save(path); err != nil {
		t.Fatalf("Failed to write test deck: %v", err)
	}
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}
