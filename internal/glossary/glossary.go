package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Glossary maps a normalized source term to its fixed target translation.
// Once approved it is immutable; replacements happen wholesale.
type Glossary map[string]string

// Load reads a glossary JSON file (a flat string-to-string object)
func Load(path string) (Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary file: %w", err)
	}

	var g Glossary
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse glossary file: %w", err)
	}

	return g, nil
}

// Save writes the glossary to a JSON file with stable key order
func (g Glossary) Save(path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode glossary: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write glossary file: %w", err)
	}

	return nil
}

// Merge returns a new glossary with override entries taking precedence.
// Neither input is modified.
func (g Glossary) Merge(override Glossary) Glossary {
	merged := make(Glossary, len(g)+len(override))
	for term, target := range g {
		merged[term] = target
	}
	for term, target := range override {
		merged[term] = target
	}
	return merged
}

// Terms returns the source terms in sorted order, for stable prompt text
func (g Glossary) Terms() []string {
	terms := make([]string, 0, len(g))
	for term := range g {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// JSON renders the glossary as a compact JSON object for prompt embedding.
// An empty or nil glossary renders as "{}".
func (g Glossary) JSON() string {
	if len(g) == 0 {
		return "{}"
	}
	data, err := json.Marshal(g)
	if err != nil {
		return "{}"
	}
	return string(data)
}
