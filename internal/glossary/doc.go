// Package glossary defines the source-term to target-term mapping used to
// enforce translation consistency, with JSON file persistence and merging
// of user-edited overrides.
package glossary
