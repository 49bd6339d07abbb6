package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"suggestion-app/src/domain"
	"suggestion-app/src/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSuggestionRepository は domain.SuggestionRepository のモック実装
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) All(ctx context.Context) ([]domain.Suggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) GetByID(ctx context.Context, id int) (*domain.Suggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Suggestion), args.Error(1)
}

func seedCatalog() []domain.Suggestion {
	d := func(s string) time.Time {
		t, _ := time.Parse(domain.DateLayout, s)
		return t
	}
	return []domain.Suggestion{
		{ID: 1, Title: "Organiser une journée team building", Category: "Événements", Date: d("2025-01-20"), Status: domain.StatusAccepted},
		{ID: 2, Title: "Améliorer le système de réservation", Category: "Technologie", Date: d("2025-01-15"), Status: domain.StatusRefused},
		{ID: 3, Title: "Créer un système de récompenses", Category: "Ressources Humaines", Date: d("2025-01-25"), Status: domain.StatusRefused},
		{ID: 4, Title: "Moderniser l'interface utilisateur", Category: "Technologie", Date: d("2025-01-30"), Status: domain.StatusPending},
		{ID: 5, Title: "Formation à la sécurité informatique", Category: "Formation", Date: d("2025-02-05"), Status: domain.StatusAccepted},
	}
}

func suggestionIDs(suggestions []domain.Suggestion) []int {
	result := make([]int, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.ID
	}
	return result
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func TestSuggestionUsecase_ListSuggestions(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		mockSetup     func(*MockSuggestionRepository)
		expectedIDs   []int
		expectedError error
	}{
		{
			name: "全件",
			term: "",
			mockSetup: func(m *MockSuggestionRepository) {
				m.On("All", mock.Anything).Return(seedCatalog(), nil)
			},
			expectedIDs: []int{1, 2, 3, 4, 5},
		},
		{
			name: "カテゴリ検索",
			term: "techno",
			mockSetup: func(m *MockSuggestionRepository) {
				m.On("All", mock.Anything).Return(seedCatalog(), nil)
			},
			expectedIDs: []int{2, 4},
		},
		{
			name:          "検索語が長すぎる",
			term:          strings.Repeat("a", usecase.MaxSearchTermLength+1),
			mockSetup:     func(m *MockSuggestionRepository) {},
			expectedError: usecase.ErrInvalidSearchTerm,
		},
		{
			name: "リポジトリエラー",
			term: "",
			mockSetup: func(m *MockSuggestionRepository) {
				m.On("All", mock.Anything).Return(nil, assert.AnError)
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSuggestionRepository)
			tt.mockSetup(repo)
			u := usecase.NewSuggestionUsecase(repo)

			result, err := u.ListSuggestions(context.Background(), tt.term)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedIDs, suggestionIDs(result))
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestSuggestionUsecase_GetSuggestion(t *testing.T) {
	t.Run("取得成功", func(t *testing.T) {
		repo := new(MockSuggestionRepository)
		catalog := seedCatalog()
		repo.On("GetByID", mock.Anything, 3).Return(&catalog[2], nil)

		s, err := usecase.NewSuggestionUsecase(repo).GetSuggestion(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Créer un système de récompenses", s.Title)
	})

	t.Run("見つからない", func(t *testing.T) {
		repo := new(MockSuggestionRepository)
		repo.On("GetByID", mock.Anything, 999).Return(nil, domain.ErrSuggestionNotFound)

		s, err := usecase.NewSuggestionUsecase(repo).GetSuggestion(context.Background(), 999)
		assert.ErrorIs(t, err, usecase.ErrSuggestionNotFound)
		assert.Nil(t, s)
	})

	t.Run("その他のエラーはラップされる", func(t *testing.T) {
		repo := new(MockSuggestionRepository)
		repo.On("GetByID", mock.Anything, 1).Return(nil, assert.AnError)

		_, err := usecase.NewSuggestionUsecase(repo).GetSuggestion(context.Background(), 1)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, errors.Is(err, usecase.ErrSuggestionNotFound))
	})
}

func TestParseSuggestionID(t *testing.T) {
	tests := []struct {
		raw        string
		expectedID int
		expectedOK bool
	}{
		{raw: "3", expectedID: 3, expectedOK: true},
		{raw: " 42 ", expectedID: 42, expectedOK: true},
		{raw: "", expectedOK: false},
		{raw: "abc", expectedOK: false},
		{raw: "3abc", expectedOK: false},
		{raw: "12345678901", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, ok := usecase.ParseSuggestionID(tt.raw)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
