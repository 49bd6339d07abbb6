package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"suggestion-app/src/domain"
)

var (
	ErrSuggestionNotFound = domain.ErrSuggestionNotFound
	ErrInvalidSearchTerm  = errors.New("search term must be at most 200 characters")
)

// MaxSearchTermLength 検索語の最大文字数
const MaxSearchTermLength = 200

// SuggestionUsecase defines the interface for read-only catalog access
type SuggestionUsecase interface {
	ListSuggestions(ctx context.Context, term string) ([]domain.Suggestion, error)
	GetSuggestion(ctx context.Context, id int) (*domain.Suggestion, error)
}

type suggestionUsecase struct {
	repo domain.SuggestionRepository
}

// NewSuggestionUsecase creates a new suggestion usecase
func NewSuggestionUsecase(repo domain.SuggestionRepository) SuggestionUsecase {
	return &suggestionUsecase{
		repo: repo,
	}
}

// ListSuggestions returns the catalog filtered by term
func (u *suggestionUsecase) ListSuggestions(ctx context.Context, term string) ([]domain.Suggestion, error) {
	if len([]rune(term)) > MaxSearchTermLength {
		return nil, ErrInvalidSearchTerm
	}

	all, err := u.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return domain.FilterSuggestions(all, term), nil
}

// GetSuggestion retrieves a suggestion by ID
func (u *suggestionUsecase) GetSuggestion(ctx context.Context, id int) (*domain.Suggestion, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSuggestionNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion %d: %w", id, err)
	}
	return s, nil
}

// ParseSuggestionID parses a textual route identifier.
// 数値でない、または空の場合はfalseを返す
func ParseSuggestionID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > 10 {
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
