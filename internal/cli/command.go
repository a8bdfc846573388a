package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hyunsang-coder/slideglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slideglot [deck.json]",
		Short: "Slide deck glossary and translation tool",
		Long: `slideglot turns an extracted slide deck into Markdown and a glossary-
consistent translation.

It extracts terminology candidates from the deck, asks an LLM once for a
glossary proposal (cached by content hash), translates the deck's text in
aligned batches, and writes Markdown, a translated deck JSON and the
glossary.

Examples:
  slideglot deck.json                       # Translate to English
  slideglot deck.json --target ja           # Translate to Japanese
  slideglot deck.json --markdown-only       # Just emit Markdown, no LLM
  slideglot deck.json --glossary terms.json # Use a user-edited glossary`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "slideglot", "output")
	defaultCacheDir := filepath.Join(home, ".local", "state", "slideglot", "cache")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.slideglot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().BoolVar(&flags.MarkdownOnly, "markdown-only", false, "Only render Markdown, skip glossary and translation")
	cmd.Flags().StringVar(&flags.GlossaryFile, "glossary", "", "User-edited glossary JSON file (entries override the built glossary)")
	cmd.Flags().BoolVar(&flags.SkipPreflight, "skip-preflight", false, "Skip the glossary LLM call (use with --glossary)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the accumulated output directory and exit")

	// Rendering flags
	cmd.Flags().StringVar(&flags.WithNotes, "notes", flags.WithNotes, "Include speaker notes in output: on or off")
	cmd.Flags().StringVar(&flags.Figures, "figures", flags.Figures, "Figure rendering: placeholder or omit")
	cmd.Flags().StringVar(&flags.Charts, "charts", flags.Charts, "Chart rendering: labels, placeholder or omit")

	// Translation flags
	cmd.Flags().StringVarP(&flags.SourceLang, "source", "s", flags.SourceLang, "Source language: ko, en, ja, zh or auto")
	cmd.Flags().StringVarP(&flags.TargetLang, "target", "t", flags.TargetLang, "Target language: ko, en, ja, zh")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "LLM provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", flags.Model, "Chat model for glossary and translation calls")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature (kept low so JSON stays stable)")
	cmd.Flags().IntVar(&flags.MaxTerms, "max-terms", flags.MaxTerms, "Maximum terminology candidates sent to the glossary call")
	cmd.Flags().IntVar(&flags.BatchSize, "batch-size", flags.BatchSize, "Text segments per translation batch")
	cmd.Flags().StringVar(&flags.ExtraInstructions, "instructions", "", "Extra translation instructions (e.g. 'keep headline style')")

	// Cache flags
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", defaultCacheDir, "Glossary cache directory")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the glossary cache")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.notes", cmd.Flags().Lookup("notes"))
	viper.BindPFlag("output.figures", cmd.Flags().Lookup("figures"))
	viper.BindPFlag("output.charts", cmd.Flags().Lookup("charts"))
	viper.BindPFlag("translate.source_lang", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translate.target_lang", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("translate.max_terms", cmd.Flags().Lookup("max-terms"))
	viper.BindPFlag("translate.batch_size", cmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("cache.dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("cache.disabled", cmd.Flags().Lookup("no-cache"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// Load a local .env first so OPENAI_API_KEY etc. work without a shell
	// profile
	godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".slideglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slideglot")
	}

	// Environment variables
	viper.SetEnvPrefix("SLIDEGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig overlays config file values onto the flags. BindPFlag gives
// an explicit flag precedence over the config file, which in turn beats the
// flag default, so a plain read-back resolves all three layers.
func ApplyConfig(flags *Flags) {
	flags.OutputDir = viper.GetString("output.directory")
	flags.WithNotes = viper.GetString("output.notes")
	flags.Figures = viper.GetString("output.figures")
	flags.Charts = viper.GetString("output.charts")
	flags.SourceLang = viper.GetString("translate.source_lang")
	flags.TargetLang = viper.GetString("translate.target_lang")
	flags.Provider = viper.GetString("translate.provider")
	flags.Model = viper.GetString("translate.model")
	flags.Temperature = viper.GetFloat64("translate.temperature")
	flags.MaxTerms = viper.GetInt("translate.max_terms")
	flags.BatchSize = viper.GetInt("translate.batch_size")
	flags.CacheDir = viper.GetString("cache.dir")
	flags.NoCache = viper.GetBool("cache.disabled")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}
