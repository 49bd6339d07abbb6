package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"suggestion-app/src/domain"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed/suggestions.yaml
var defaultSeed []byte

// seedFile はシードYAMLのルート
type seedFile struct {
	Suggestions []seedSuggestion `yaml:"suggestions"`
}

type seedSuggestion struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Date        string `yaml:"date"`
	Status      string `yaml:"status"`
	Likes       int    `yaml:"likes"`
}

// CatalogRepository implements domain.SuggestionRepository over a fixed in-memory catalog
type CatalogRepository struct {
	suggestions []domain.Suggestion
	logger      *logrus.Logger
}

// NewCatalogRepository creates a catalog repository from the embedded seed data
func NewCatalogRepository(logger *logrus.Logger) (*CatalogRepository, error) {
	return NewCatalogRepositoryFromYAML(defaultSeed, logger)
}

// NewCatalogRepositoryFromYAML creates a catalog repository from YAML seed data
func NewCatalogRepositoryFromYAML(data []byte, logger *logrus.Logger) (*CatalogRepository, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	suggestions, err := toDomainSuggestions(seed.Suggestions)
	if err != nil {
		return nil, err
	}

	logger.WithField("count", len(suggestions)).Info("カタログを読み込みました")

	return &CatalogRepository{
		suggestions: suggestions,
		logger:      logger,
	}, nil
}

// All returns a copy of the whole catalog in seed order
func (r *CatalogRepository) All(ctx context.Context) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]domain.Suggestion, len(r.suggestions))
	copy(result, r.suggestions)
	return result, nil
}

// GetByID retrieves a copy of a suggestion by ID
func (r *CatalogRepository) GetByID(ctx context.Context, id int) (*domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, ok := domain.FindSuggestionByID(r.suggestions, id)
	if !ok {
		r.logger.WithField("suggestion_id", id).Debug("サジェスションが見つかりません")
		return nil, domain.ErrSuggestionNotFound
	}

	found := *s
	return &found, nil
}

// toDomainSuggestions validates seed records and converts them to domain entities
func toDomainSuggestions(records []seedSuggestion) ([]domain.Suggestion, error) {
	seen := make(map[int]bool, len(records))
	result := make([]domain.Suggestion, 0, len(records))

	for i, rec := range records {
		if rec.ID <= 0 {
			return nil, fmt.Errorf("seed record %d: id must be positive, got %d", i, rec.ID)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("seed record %d: duplicate id %d", i, rec.ID)
		}
		seen[rec.ID] = true

		status := domain.Status(rec.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("seed record %d: unknown status %q", i, rec.Status)
		}
		if rec.Likes < 0 {
			return nil, fmt.Errorf("seed record %d: likes must not be negative", i)
		}

		date, err := time.Parse(domain.DateLayout, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: invalid date: %w", i, err)
		}

		result = append(result, domain.Suggestion{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Category:    rec.Category,
			Date:        date,
			Status:      status,
			Likes:       rec.Likes,
		})
	}

	return result, nil
}
