// Package models provides functionality for listing available OpenAI chat
// models. It helps users discover which models their API key can use for
// glossary and translation calls.
package models
