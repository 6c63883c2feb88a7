package domain_test

import (
	"testing"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

func TestNewTheme_BackfillsMissingKeys(t *testing.T) {
	theme := domain.NewTheme(map[string]string{
		"name":  "Partial",
		"bg":    "#101010",
		"water": "#0000FF",
		"extra": "ignored",
	})

	if theme.Name != "Partial" || theme.Background != "#101010" || theme.Water != "#0000FF" {
		t.Errorf("file values not preserved: %+v", theme)
	}

	def := domain.DefaultTheme()
	for _, key := range domain.ThemeKeys {
		if key == "name" || key == "bg" || key == "water" {
			continue
		}
		if got, want := theme.Value(key), def.Value(key); got != want {
			t.Errorf("key %s = %q, want default %q", key, got, want)
		}
	}
}

func TestNewTheme_KeepsExplicitEmptyValue(t *testing.T) {
	theme := domain.NewTheme(map[string]string{"description": ""})
	if theme.Description != "" {
		t.Errorf("expected explicit empty description, got %q", theme.Description)
	}
}

func TestNewTheme_NilIsDefault(t *testing.T) {
	if got := domain.NewTheme(nil); got != domain.DefaultTheme() {
		t.Errorf("expected default theme, got %+v", got)
	}
}

func TestTheme_Values(t *testing.T) {
	values := domain.DefaultTheme().Values()
	if len(values) != len(domain.ThemeKeys) {
		t.Fatalf("expected %d keys, got %d", len(domain.ThemeKeys), len(values))
	}
	for _, key := range domain.ThemeKeys {
		if key == "description" || key == "name" {
			continue
		}
		if values[key] == "" {
			t.Errorf("default theme has no value for %s", key)
		}
	}
}
