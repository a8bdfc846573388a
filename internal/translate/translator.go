package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Hyunsang-coder/slideglot/internal/glossary"
	"github.com/Hyunsang-coder/slideglot/internal/llm"
)

const (
	// DefaultModel is the chat model used for translation batches
	DefaultModel = "gpt-4o-mini"

	// DefaultBatchSize bounds how many segments go into one LLM call
	DefaultBatchSize = 40
)

var languageNames = map[string]string{
	"ko": "Korean",
	"en": "English",
	"ja": "Japanese",
	"zh": "Chinese",
}

// Config holds the translation settings for one document
type Config struct {
	SourceLang        string // language code or "auto"
	TargetLang        string
	Model             string
	Temperature       float32
	BatchSize         int
	Glossary          glossary.Glossary
	StyleNote         string
	ExtraInstructions string
}

// BatchError reports a failed translation batch. The batch index is
// zero-based; Err is the underlying ParseError or ShapeError.
type BatchError struct {
	Batch int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("translation batch %d failed: %v", e.Batch+1, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// Translator translates text segments via batched LLM calls
type Translator struct {
	client llm.ChatClient
	config Config
}

// New creates a translator. Zero config fields fall back to defaults.
func New(client llm.ChatClient, config Config) *Translator {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.TargetLang == "" {
		config.TargetLang = "en"
	}
	if config.SourceLang == "" {
		config.SourceLang = "auto"
	}
	return &Translator{client: client, config: config}
}

// Translate translates all texts batch by batch. The returned slice always
// has the same length and order as the input; segments of a failed batch
// keep their source text and the failure is reported in the error list.
func (t *Translator) Translate(ctx context.Context, texts []string) ([]string, []*BatchError) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(texts))
	var failures []*BatchError

	batchIndex := 0
	for start := 0; start < len(texts); start += t.config.BatchSize {
		end := start + t.config.BatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		translated, err := t.TranslateBatch(ctx, batch)
		if err != nil {
			failures = append(failures, &BatchError{Batch: batchIndex, Err: err})
			out = append(out, batch...)
		} else {
			out = append(out, translated...)
		}
		batchIndex++
	}

	return out, failures
}

// TranslateBatch translates a single batch with one LLM call. Repeated
// segments within the batch are sent once. On a parse failure or a length
// mismatch the whole batch fails; no partial result is returned.
func (t *Translator) TranslateBatch(ctx context.Context, batch []string) ([]string, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	// In-batch duplicate caching: translate unique segments once
	indexOf := make(map[string]int)
	var unique []string
	backRefs := make([]int, len(batch))
	for i, text := range batch {
		if idx, ok := indexOf[text]; ok {
			backRefs[i] = idx
			continue
		}
		idx := len(unique)
		indexOf[text] = idx
		unique = append(unique, text)
		backRefs[i] = idx
	}

	user, err := t.buildPrompt(unique)
	if err != nil {
		return nil, err
	}

	raw, err := t.client.Complete(ctx, llm.Request{
		System:      "You are a translator. Output only valid JSON.",
		User:        user,
		Model:       t.config.Model,
		Temperature: t.config.Temperature,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, err
	}

	decoded, err := decodeResult(raw)
	if err != nil {
		return nil, err
	}
	if len(decoded) != len(unique) {
		return nil, &llm.ShapeError{
			Reason: fmt.Sprintf("'result' length %d does not match source length %d", len(decoded), len(unique)),
		}
	}

	out := make([]string, len(batch))
	for i, ref := range backRefs {
		out[i] = decoded[ref]
	}
	return out, nil
}

func (t *Translator) buildPrompt(unique []string) (string, error) {
	sourcePayload, err := json.Marshal(unique)
	if err != nil {
		return "", fmt.Errorf("failed to encode source batch: %w", err)
	}

	instruction, sourceHint, targetName := t.languageInstruction()

	extra := t.config.ExtraInstructions
	if t.config.StyleNote != "" {
		if extra != "" {
			extra = t.config.StyleNote + " " + extra
		} else {
			extra = t.config.StyleNote
		}
	}
	if extra == "" {
		extra = "None"
	}

	return fmt.Sprintf(
		"%s Keep numbers/dates/URLs/code unchanged. "+
			"Return only JSON with a 'result' array of translated strings matching the SOURCE order and length.\n"+
			"Source language hint: %s\n"+
			"Target language: %s\n"+
			"Glossary(JSON): %s\n"+
			"Extra Instructions: %s\n"+
			"SOURCE(JSON): %s",
		instruction, sourceHint, targetName, t.config.Glossary.JSON(), extra, sourcePayload), nil
}

// languageInstruction derives the translate instruction, source hint and
// target language name from the configured language pair
func (t *Translator) languageInstruction() (instruction, sourceHint, targetName string) {
	targetCode := strings.ToLower(t.config.TargetLang)
	if targetCode == "auto" {
		targetName = "Auto (opposite language)"
	} else {
		targetName = languageName(targetCode)
	}

	sourceCode := strings.ToLower(t.config.SourceLang)
	switch {
	case sourceCode == targetCode && targetCode != "auto":
		instruction = fmt.Sprintf("Polish each item in %s and improve clarity while keeping the meaning.", targetName)
		sourceHint = targetName
	case sourceCode == "auto":
		instruction = fmt.Sprintf("Detect whether each item is Korean, English, Japanese, or Chinese and translate it into %s.", targetName)
		sourceHint = "Auto-detect (ko/en/ja/zh)"
	default:
		sourceName := languageName(sourceCode)
		instruction = fmt.Sprintf("Translate each item from %s to %s.", sourceName, targetName)
		sourceHint = sourceName
	}
	return instruction, sourceHint, targetName
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// decodeResult parses the `{"result": [...]}` payload. Null entries become
// empty strings and non-string scalars are stringified; a missing or
// non-array result is a shape error.
func decodeResult(raw string) ([]string, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &llm.ParseError{Raw: raw, Err: err}
	}

	rawResult, ok := payload["result"]
	if !ok {
		return nil, &llm.ShapeError{Reason: "missing 'result' array"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawResult, &items); err != nil {
		return nil, &llm.ShapeError{Reason: "'result' is not an array"}
	}

	out := make([]string, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out[i] = s
			continue
		}
		if string(item) == "null" {
			out[i] = ""
			continue
		}
		out[i] = strings.Trim(string(item), `"`)
	}
	return out, nil
}
