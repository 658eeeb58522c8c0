package handlers

import (
	"testing"

	"golang.org/x/text/language"

	"todocli/models"
)

func TestNewPrinter_FallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"en", "fr", "", "xx-invalid"} {
		if got := NewPrinter(lang).Sprintf("No teams found."); got != "No teams found." {
			t.Errorf("NewPrinter(%q): got %q", lang, got)
		}
	}
}

func TestNewPrinter_Portuguese(t *testing.T) {
	for _, lang := range []string{"pt-BR", "pt-br"} {
		if got := NewPrinter(lang).Sprintf("No teams found."); got != "Nenhum time encontrado." {
			t.Errorf("NewPrinter(%q): got %q", lang, got)
		}
	}
}

func TestEnumLabelsAreTranslated(t *testing.T) {
	pt := map[string]bool{}
	for _, m := range translations[language.BrazilianPortuguese] {
		pt[m[0]] = true
	}
	for _, s := range models.Statuses() {
		if !pt[s.String()] {
			t.Errorf("missing translation for status %q", s)
		}
	}
	for _, p := range models.Priorities() {
		if !pt[p.String()] {
			t.Errorf("missing translation for priority %q", p)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("id", "12"); err != nil || id != 12 {
		t.Errorf("parseID(12) = %d, %v", id, err)
	}
	for _, text := range []string{"0", "-1", "x", ""} {
		if _, err := parseID("id", text); models.KindOf(err) != models.ErrValidation {
			t.Errorf("parseID(%q): expected validation error, got %v", text, err)
		}
	}
}

func TestTranslationKeysAreUnique(t *testing.T) {
	for tag, messages := range translations {
		seen := map[string]bool{}
		for _, m := range messages {
			if seen[m[0]] {
				t.Errorf("%v: duplicate key %q", tag, m[0])
			}
			seen[m[0]] = true
		}
	}
}

func TestLookup(t *testing.T) {
	pt := NewPrinter("pt-BR")
	if got := lookup(pt, "Error fetching team"); got != "Erro ao buscar time" {
		t.Errorf("unexpected translation %q", got)
	}
	if got := lookup(pt, "ID"); got != "ID" {
		t.Errorf("expected untranslated key as given, got %q", got)
	}
	if got := lookup(NewPrinter("en"), "Error fetching team"); got != "Error fetching team" {
		t.Errorf("unexpected English text %q", got)
	}
}
