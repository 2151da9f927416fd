package cursor

import (
	"testing"
)

func TestCompareModes(t *testing.T) {
	samples := []struct {
		input, text string
		mode        Compare
		matched     bool
		index       int
	}{
		{"Straße", "STRASSE", IgnoreCase, false, 0},
		{"Ärger", "ärger", IgnoreCase, true, 6},
		{"Ärger", "Arger", IgnoreDiacritics, true, 6},
		{"Ärger", "arger", IgnoreDiacritics, false, 0},
		{"Ärger!", "arger", IgnoreCase | IgnoreDiacritics, true, 6},
		{"café au lait", "CAFE", IgnoreCase | IgnoreDiacritics, true, 5},
		{"Éclair", "ECLAIR", IgnoreCaseAndDiacritics, true, 7},
		{"Éclair", "ECLAIR", IgnoreDiacritics, false, 0},
		{"caf", "cafe", IgnoreCase, false, 0},
		{"abc", "", Exact, true, 0},
	}

	for i, sample := range samples {
		s := New(sample.input)
		matched := s.AdvanceIf(sample.text, sample.mode)
		if matched != sample.matched || s.Index() != sample.index {
			t.Errorf("sample #%d: expecting %v at %d, got %v at %d", i, sample.matched, sample.index, matched, s.Index())
		}
	}
}

func TestPredicates(t *testing.T) {
	for _, r := range "0189" {
		if !IsDigit(r) || !IsAlphanumeric(r) || IsLetter(r) {
			t.Errorf("%q must be a digit", r)
		}
	}
	for _, r := range "azAZ" {
		if !IsLetter(r) || !IsAlphanumeric(r) || IsDigit(r) {
			t.Errorf("%q must be a letter", r)
		}
	}
	for _, r := range " \t\r\n" {
		if !IsWhitespace(r) || IsAlphanumeric(r) {
			t.Errorf("%q must be whitespace", r)
		}
	}
	for _, r := range "é_-" {
		if IsLetter(r) || IsDigit(r) || IsWhitespace(r) {
			t.Errorf("%q must not belong to any class", r)
		}
	}
}
