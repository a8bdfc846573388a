package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveOutput moves the accumulated run results (Markdown, translated
// decks, glossaries) out of outputDir into a timestamped folder under a
// sibling archive/ directory, leaving room for the next run.
func ArchiveOutput(outputDir string) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("nothing to archive in %s", outputDir)
	}

	archiveDir := filepath.Join(filepath.Dir(outputDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, "output-"+stamp)
	if _, err := os.Stat(archivePath); err == nil {
		// Two archives within the same second; disambiguate
		stamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, "output-"+stamp)
	}

	if err := os.Rename(outputDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive output directory: %w", err)
	}

	fmt.Printf("Archived %d result files to: %s\n", len(entries), archivePath)
	return nil
}
