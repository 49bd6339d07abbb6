package usecase

import (
	"sync"

	"suggestion-app/src/domain"
	"suggestion-app/src/metrics"
)

// ListState is a consistent snapshot of a list view
type ListState struct {
	SearchTerm  string
	Suggestions []domain.Suggestion // 検索語で絞り込まれた一覧
	Favorites   []domain.Suggestion
	LikedIDs    map[int]bool
	Total       int
}

// IsLiked reports whether the suggestion was liked in this session
func (s ListState) IsLiked(id int) bool {
	return s.LikedIDs[id]
}

// IsInFavorites reports whether the suggestion is a favorite in this session
func (s ListState) IsInFavorites(id int) bool {
	for _, fav := range s.Favorites {
		if fav.ID == id {
			return true
		}
	}
	return false
}

// ListView holds the session state of the suggestion list.
// いいね数はセッションごとのカタログのコピー上で増減する
type ListView struct {
	mu sync.RWMutex

	suggestions         []domain.Suggestion
	filteredSuggestions []int // suggestionsのインデックス
	likedSuggestionIDs  map[int]struct{}
	favoriteSuggestions []int // 追加順のID
	searchTerm          string
}

// NewListView creates a list view over its own copy of the catalog
func NewListView(catalog []domain.Suggestion) *ListView {
	suggestions := make([]domain.Suggestion, len(catalog))
	copy(suggestions, catalog)

	v := &ListView{
		suggestions:        suggestions,
		likedSuggestionIDs: make(map[int]struct{}),
	}
	v.filterLocked()
	return v
}

// ToggleLike likes or unlikes a suggestion and returns its updated state
func (v *ListView) ToggleLike(id int) (domain.Suggestion, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.findLocked(id)
	if s == nil {
		return domain.Suggestion{}, false, ErrSuggestionNotFound
	}

	liked := false
	if _, ok := v.likedSuggestionIDs[id]; ok {
		if s.Likes > 0 {
			s.Likes--
		}
		delete(v.likedSuggestionIDs, id)
	} else {
		s.Likes++
		v.likedSuggestionIDs[id] = struct{}{}
		liked = true
	}

	metrics.ObserveLikeToggle(liked)
	return *s, liked, nil
}

// IsLiked reports whether the suggestion is in the liked set
func (v *ListView) IsLiked(id int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.likedSuggestionIDs[id]
	return ok
}

// AddToFavorites appends a suggestion to favorites unless already present.
// 追加した場合はtrueを返す
func (v *ListView) AddToFavorites(id int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.findLocked(id) == nil {
		return false, ErrSuggestionNotFound
	}

	added := false
	if !v.isInFavoritesLocked(id) {
		v.favoriteSuggestions = append(v.favoriteSuggestions, id)
		added = true
	}

	metrics.ObserveFavoriteChange("add", added)
	return added, nil
}

// RemoveFromFavorites removes every favorite entry with the given ID.
// 削除した場合はtrueを返す
func (v *ListView) RemoveFromFavorites(id int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.findLocked(id) == nil {
		return false, ErrSuggestionNotFound
	}

	kept := v.favoriteSuggestions[:0]
	for _, favID := range v.favoriteSuggestions {
		if favID != id {
			kept = append(kept, favID)
		}
	}
	removed := len(kept) != len(v.favoriteSuggestions)
	v.favoriteSuggestions = kept

	metrics.ObserveFavoriteChange("remove", removed)
	return removed, nil
}

// IsInFavorites reports whether the suggestion is a favorite
func (v *ListView) IsInFavorites(id int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.isInFavoritesLocked(id)
}

// SetSearchTerm updates the search term and refilters the list
func (v *ListView) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.searchTerm = term
	v.filterLocked()
}

// FilterSuggestions recomputes the filtered list from the full catalog
func (v *ListView) FilterSuggestions() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filterLocked()
}

// SearchTerm returns the current search term
func (v *ListView) SearchTerm() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.searchTerm
}

// Suggestions returns a copy of the session catalog
func (v *ListView) Suggestions() []domain.Suggestion {
	v.mu.RLock()
	defer v.mu.RUnlock()

	result := make([]domain.Suggestion, len(v.suggestions))
	copy(result, v.suggestions)
	return result
}

// FilteredSuggestions returns a copy of the filtered list
func (v *ListView) FilteredSuggestions() []domain.Suggestion {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.filteredLocked()
}

// Favorites returns a copy of the favorites in insertion order
func (v *ListView) Favorites() []domain.Suggestion {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.favoritesLocked()
}

// State returns a consistent snapshot of the view
func (v *ListView) State() ListState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	liked := make(map[int]bool, len(v.likedSuggestionIDs))
	for id := range v.likedSuggestionIDs {
		liked[id] = true
	}

	return ListState{
		SearchTerm:  v.searchTerm,
		Suggestions: v.filteredLocked(),
		Favorites:   v.favoritesLocked(),
		LikedIDs:    liked,
		Total:       len(v.suggestions),
	}
}

func (v *ListView) filterLocked() {
	normalized := domain.NormalizeSearchTerm(v.searchTerm)

	filtered := make([]int, 0, len(v.suggestions))
	for i, s := range v.suggestions {
		if normalized == "" || s.Matches(normalized) {
			filtered = append(filtered, i)
		}
	}
	v.filteredSuggestions = filtered
}

func (v *ListView) filteredLocked() []domain.Suggestion {
	result := make([]domain.Suggestion, len(v.filteredSuggestions))
	for i, idx := range v.filteredSuggestions {
		result[i] = v.suggestions[idx]
	}
	return result
}

func (v *ListView) favoritesLocked() []domain.Suggestion {
	result := make([]domain.Suggestion, 0, len(v.favoriteSuggestions))
	for _, id := range v.favoriteSuggestions {
		if s := v.findLocked(id); s != nil {
			result = append(result, *s)
		}
	}
	return result
}

func (v *ListView) findLocked(id int) *domain.Suggestion {
	s, _ := domain.FindSuggestionByID(v.suggestions, id)
	return s
}

func (v *ListView) isInFavoritesLocked(id int) bool {
	for _, favID := range v.favoriteSuggestions {
		if favID == id {
			return true
		}
	}
	return false
}
