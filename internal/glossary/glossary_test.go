package glossary

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	g := Glossary{"배틀로얄": "Battle Royale", "얼리액세스": "Early Access"}
	path := filepath.Join(t.TempDir(), "glossary.json")

	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(g, loaded) {
		t.Errorf("Round-trip mismatch: %v != %v", g, loaded)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossary.json")
	if err := os.WriteFile(path, []byte(`["not", "an", "object"]`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for non-object glossary")
	}
}

func TestMerge_OverrideWins(t *testing.T) {
	base := Glossary{"kpi": "KPI", "빌드": "build"}
	override := Glossary{"빌드": "game build", "런칭": "launch"}

	merged := base.Merge(override)

	want := Glossary{"kpi": "KPI", "빌드": "game build", "런칭": "launch"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Merge = %v, want %v", merged, want)
	}

	// Inputs untouched
	if base["빌드"] != "build" {
		t.Error("Merge mutated the base glossary")
	}
}

func TestTerms_Sorted(t *testing.T) {
	g := Glossary{"c": "3", "a": "1", "b": "2"}
	if got := g.Terms(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Terms() = %v, want sorted", got)
	}
}

func TestJSON_Empty(t *testing.T) {
	if got := Glossary(nil).JSON(); got != "{}" {
		t.Errorf("Expected {} for nil glossary, got %s", got)
	}
	if got := (Glossary{}).JSON(); got != "{}" {
		t.Errorf("Expected {} for empty glossary, got %s", got)
	}
}
