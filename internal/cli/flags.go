package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	OutputDir     string
	MarkdownOnly  bool
	GlossaryFile  string
	SkipPreflight bool
	ListModels    bool
	Archive       bool

	// Rendering flags
	WithNotes string // "on" or "off"
	Figures   string // "placeholder" or "omit"
	Charts    string // "labels", "placeholder" or "omit"

	// Translation flags
	SourceLang        string
	TargetLang        string
	Provider          string
	Model             string
	Temperature       float64
	MaxTerms          int
	BatchSize         int
	ExtraInstructions string

	// Cache flags
	CacheDir string
	NoCache  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		WithNotes:   "off",
		Figures:     "placeholder",
		Charts:      "labels",
		SourceLang:  "auto",
		TargetLang:  "en",
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Temperature: 0.1,
		MaxTerms:    50,
		BatchSize:   40,
	}
}
