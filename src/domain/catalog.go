package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeSearchTerm trims and lower-cases a search term
func NormalizeSearchTerm(term string) string {
	return foldCase(strings.TrimSpace(term))
}

// FilterSuggestions returns the suggestions whose title or category contains term.
// 空白のみの検索語はカタログ全体を元の順序で返す
func FilterSuggestions(catalog []Suggestion, term string) []Suggestion {
	normalized := NormalizeSearchTerm(term)
	if normalized == "" {
		result := make([]Suggestion, len(catalog))
		copy(result, catalog)
		return result
	}

	result := make([]Suggestion, 0, len(catalog))
	for _, s := range catalog {
		if s.Matches(normalized) {
			result = append(result, s)
		}
	}
	return result
}

// Matches reports whether the normalized term is a substring of the title or category
func (s Suggestion) Matches(normalized string) bool {
	return strings.Contains(foldCase(s.Title), normalized) ||
		strings.Contains(foldCase(s.Category), normalized)
}

// FindSuggestionByID looks up a suggestion by ID
func FindSuggestionByID(catalog []Suggestion, id int) (*Suggestion, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// foldCase lower-cases text using French casing rules.
// Caserはゴルーチン間で共有できないため毎回生成する
func foldCase(s string) string {
	return cases.Lower(language.French).String(s)
}
