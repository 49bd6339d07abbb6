package usecase

import (
	"context"
	"errors"

	"suggestion-app/src/domain"
	"suggestion-app/src/metrics"
)

// ListRoute is the route of the suggestion list
const ListRoute = "/listSuggestion"

// Navigator performs route changes on behalf of a view
type Navigator interface {
	Navigate(path string)
}

// DetailView resolves a single suggestion by ID.
// ルートごとに生成され、Activateは一度だけ呼ばれる想定
type DetailView struct {
	repo         domain.SuggestionRepository
	suggestionID *int
	suggestion   *domain.Suggestion
}

// NewDetailView creates a detail view backed by the shared catalog
func NewDetailView(repo domain.SuggestionRepository) *DetailView {
	return &DetailView{repo: repo}
}

// Activate stores the identifier and resolves the suggestion.
// 見つからない場合はエラーにせずSuggestion()がnilのままになる
func (v *DetailView) Activate(ctx context.Context, id int) error {
	v.suggestionID = &id
	v.suggestion = nil

	s, err := v.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSuggestionNotFound) {
			metrics.ObserveDetailLookup(false)
			return nil
		}
		return err
	}

	metrics.ObserveDetailLookup(true)
	v.suggestion = s
	return nil
}

// ActivateFromParam parses a route parameter and activates the view.
// 不正なIDはlookup-missと同じ扱い
func (v *DetailView) ActivateFromParam(ctx context.Context, raw string) error {
	id, ok := ParseSuggestionID(raw)
	if !ok {
		v.suggestionID = nil
		v.suggestion = nil
		metrics.ObserveDetailLookup(false)
		return nil
	}
	return v.Activate(ctx, id)
}

// Suggestion returns the resolved suggestion or nil
func (v *DetailView) Suggestion() *domain.Suggestion {
	return v.suggestion
}

// SuggestionID returns the parsed identifier if any
func (v *DetailView) SuggestionID() (int, bool) {
	if v.suggestionID == nil {
		return 0, false
	}
	return *v.suggestionID, true
}

// Found reports whether a suggestion was resolved
func (v *DetailView) Found() bool {
	return v.suggestion != nil
}

// GoBack returns to the list route
func (v *DetailView) GoBack(nav Navigator) {
	nav.Navigate(ListRoute)
}
