package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hyunsang-coder/slideglot/internal"
	"github.com/Hyunsang-coder/slideglot/internal/archive"
	"github.com/Hyunsang-coder/slideglot/internal/cache"
	"github.com/Hyunsang-coder/slideglot/internal/cli"
	"github.com/Hyunsang-coder/slideglot/internal/document"
	"github.com/Hyunsang-coder/slideglot/internal/glossary"
	"github.com/Hyunsang-coder/slideglot/internal/llm"
	"github.com/Hyunsang-coder/slideglot/internal/models"
	"github.com/Hyunsang-coder/slideglot/internal/pipeline"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Overlay .slideglot.yaml values onto flags that were not set explicitly
	cli.ApplyConfig(flags)

	// Handle --archive flag
	if flags.Archive {
		if err := archive.ArchiveOutput(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if len(args) == 0 {
		return fmt.Errorf("no deck file given (run with --help for usage)")
	}

	deck, err := document.Load(args[0])
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	baseName = internal.SanitizeFilename(baseName)

	renderOpts := document.RenderOptions{
		Figures: flags.Figures,
		Charts:  flags.Charts,
		Notes:   flags.WithNotes == "on",
	}

	// Markdown-only mode never touches the LLM
	if flags.MarkdownOnly {
		mdPath := filepath.Join(flags.OutputDir, baseName+".md")
		if err := os.WriteFile(mdPath, []byte(deck.Markdown(renderOpts)), 0644); err != nil {
			return fmt.Errorf("failed to write markdown: %w", err)
		}
		fmt.Printf("Markdown written to: %s\n", mdPath)
		return nil
	}

	client, err := createChatClient(flags)
	if err != nil {
		return err
	}

	var store *cache.Store
	if !flags.NoCache {
		store, err = cache.Open(filepath.Join(flags.CacheDir, "glossary_cache.db"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: glossary cache disabled: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	var override glossary.Glossary
	if flags.GlossaryFile != "" {
		override, err = glossary.Load(flags.GlossaryFile)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded glossary override with %d entries\n", len(override))
	}
	if flags.SkipPreflight && len(override) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: --skip-preflight without --glossary translates without any glossary")
	}

	// A few-thousand-word deck should finish within about a minute; the
	// timeout is a generous multiple of that
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Printf("\nProcessing: %s (%d slides)\n", args[0], len(deck.Slides))

	p := pipeline.New(client, store, pipeline.Options{
		SourceLang:        flags.SourceLang,
		TargetLang:        flags.TargetLang,
		Model:             flags.Model,
		Temperature:       float32(flags.Temperature),
		MaxTerms:          flags.MaxTerms,
		BatchSize:         flags.BatchSize,
		ExtraInstructions: flags.ExtraInstructions,
		Override:          override,
		SkipPreflight:     flags.SkipPreflight,
	})

	result, err := p.Run(ctx, deck)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	return writeResults(flags, baseName, renderOpts, result)
}

// createChatClient builds the provider selected by --provider, wrapped in
// the circuit breaker
func createChatClient(flags *cli.Flags) (llm.ChatClient, error) {
	switch flags.Provider {
	case "openai":
		return llm.NewBreakerClient(llm.NewOpenAIClient(cli.GetOpenAIKey())), nil
	case "gemini":
		client, err := llm.NewGeminiClient(context.Background(), cli.GetGeminiKey())
		if err != nil {
			return nil, err
		}
		return llm.NewBreakerClient(client), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (use openai or gemini)", flags.Provider)
	}
}

func writeResults(flags *cli.Flags, baseName string, renderOpts document.RenderOptions, result *pipeline.Result) error {
	mdPath := filepath.Join(flags.OutputDir, baseName+".md")
	if err := os.WriteFile(mdPath, []byte(result.Translated.Markdown(renderOpts)), 0644); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}

	deckPath := filepath.Join(flags.OutputDir, baseName+".translated.json")
	if err := result.Translated.Save(deckPath); err != nil {
		return err
	}

	glossaryPath := filepath.Join(flags.OutputDir, "glossary.json")
	if err := result.Glossary.Save(glossaryPath); err != nil {
		return err
	}

	// Print summary
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Glossary terms: %d", len(result.Glossary))
	if result.CacheHit {
		fmt.Printf(" (from cache)")
	}
	fmt.Println()
	if result.StyleNote != "" {
		fmt.Printf("Style note: %s\n", result.StyleNote)
	}
	for _, spot := range result.AmbiguousSpots {
		fmt.Printf("Ambiguous: %s\n", spot)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings: %d\n", len(result.Warnings))
	}
	fmt.Printf("===========================\n")

	fmt.Printf("\nDone! Results saved to: %s\n", flags.OutputDir)
	return nil
}
