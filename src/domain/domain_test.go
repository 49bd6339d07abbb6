package domain_test

import (
	"strings"
	"testing"
	"time"

	"suggestion-app/src/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func sampleCatalog() []domain.Suggestion {
	return []domain.Suggestion{
		{ID: 1, Title: "Organiser une journée team building", Category: "Événements", Date: date("2025-01-20"), Status: domain.StatusAccepted},
		{ID: 2, Title: "Améliorer le système de réservation", Category: "Technologie", Date: date("2025-01-15"), Status: domain.StatusRefused},
		{ID: 3, Title: "Créer un système de récompenses", Category: "Ressources Humaines", Date: date("2025-01-25"), Status: domain.StatusRefused},
		{ID: 4, Title: "Moderniser l'interface utilisateur", Category: "Technologie", Date: date("2025-01-30"), Status: domain.StatusPending},
		{ID: 5, Title: "Formation à la sécurité informatique", Category: "Formation", Date: date("2025-02-05"), Status: domain.StatusAccepted},
	}
}

func ids(suggestions []domain.Suggestion) []int {
	result := make([]int, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.ID
	}
	return result
}

func TestFilterSuggestions(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name     string
		term     string
		expected []int
	}{
		{name: "空文字", term: "", expected: []int{1, 2, 3, 4, 5}},
		{name: "空白のみ", term: "   ", expected: []int{1, 2, 3, 4, 5}},
		{name: "カテゴリ一致", term: "techno", expected: []int{2, 4}},
		{name: "大文字小文字を無視", term: "  TECHNO ", expected: []int{2, 4}},
		{name: "タイトル一致", term: "système", expected: []int{2, 3}},
		{name: "アクセント付き大文字", term: "ÉVÉNEMENTS", expected: []int{1}},
		{name: "一致なし", term: "zzz", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := domain.FilterSuggestions(catalog, tt.term)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestFilterSuggestions_Property(t *testing.T) {
	catalog := sampleCatalog()

	for _, term := range []string{"a", "tion", "RES", "ma", "é"} {
		result := domain.FilterSuggestions(catalog, term)
		matched := make(map[int]bool)
		normalized := domain.NormalizeSearchTerm(term)

		for _, s := range result {
			matched[s.ID] = true
			assert.True(t,
				strings.Contains(strings.ToLower(s.Title), normalized) ||
					strings.Contains(strings.ToLower(s.Category), normalized),
				"term %q should match suggestion %d", term, s.ID)
		}
		for _, s := range catalog {
			if !matched[s.ID] {
				assert.False(t, s.Matches(normalized), "term %q should not match suggestion %d", term, s.ID)
			}
		}
	}
}

func TestFilterSuggestions_ReturnsCopy(t *testing.T) {
	catalog := sampleCatalog()

	result := domain.FilterSuggestions(catalog, "")
	result[0].Likes = 42

	assert.Equal(t, 0, catalog[0].Likes)
}

func TestFindSuggestionByID(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("存在するID", func(t *testing.T) {
		s, ok := domain.FindSuggestionByID(catalog, 3)
		require.True(t, ok)
		assert.Equal(t, "Créer un système de récompenses", s.Title)
	})

	t.Run("存在しないID", func(t *testing.T) {
		s, ok := domain.FindSuggestionByID(catalog, 999)
		assert.False(t, ok)
		assert.Nil(t, s)
	})
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Acceptée", domain.StatusLabel("acceptee"))
	assert.Equal(t, "Refusée", domain.StatusLabel("refusee"))
	assert.Equal(t, "En attente", domain.StatusLabel("en_attente"))
	assert.Equal(t, "unknown", domain.StatusLabel("unknown"))
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, domain.StatusAccepted.IsValid())
	assert.True(t, domain.StatusRefused.IsValid())
	assert.True(t, domain.StatusPending.IsValid())
	assert.False(t, domain.Status("archived").IsValid())
	assert.Equal(t, "en_attente", domain.StatusPending.String())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "20 janvier 2025", domain.FormatDate(date("2025-01-20")))
	assert.Equal(t, "5 février 2025", domain.FormatDate(date("2025-02-05")))
	assert.Equal(t, "15 août 2024", domain.FormatDate(date("2024-08-15")))
	assert.Equal(t, "31 décembre 2025", domain.FormatDate(date("2025-12-31")))
}
