package domain

import (
	"context"
	"errors"
)

// ErrSuggestionNotFound is returned when no suggestion matches the requested ID
var ErrSuggestionNotFound = errors.New("suggestion not found")

// SuggestionRepository defines the read-only catalog provider.
// 返却されるSuggestionはコピーであり、呼び出し側が変更しても元データには影響しない
type SuggestionRepository interface {
	All(ctx context.Context) ([]Suggestion, error)
	GetByID(ctx context.Context, id int) (*Suggestion, error)
}
