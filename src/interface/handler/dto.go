package handler

import (
	"suggestion-app/src/domain"
)

// ListQueryDTO represents HTTP query parameters of the list view
type ListQueryDTO struct {
	Search string `form:"search" validate:"omitempty,max=200,search_term"`
}

// SuggestionResponseDTO represents HTTP response for a suggestion
type SuggestionResponseDTO struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
	Status        string `json:"status"`
	StatusLabel   string `json:"status_label"`
	Likes         int    `json:"likes"`
}

// ListItemDTO represents a suggestion row of the list view
type ListItemDTO struct {
	SuggestionResponseDTO
	Liked    bool `json:"liked"`
	Favorite bool `json:"favorite"`
}

// ListResponseDTO represents HTTP response for the list view
type ListResponseDTO struct {
	SessionID   string                  `json:"session_id"`
	SearchTerm  string                  `json:"search_term"`
	Suggestions []ListItemDTO           `json:"suggestions"`
	Favorites   []SuggestionResponseDTO `json:"favorites"`
	Count       int                     `json:"count"`
	Total       int                     `json:"total"`
}

// LikeResponseDTO represents HTTP response for a like toggle
type LikeResponseDTO struct {
	Suggestion SuggestionResponseDTO `json:"suggestion"`
	Liked      bool                  `json:"liked"`
}

// FavoritesResponseDTO represents HTTP response for favorites
type FavoritesResponseDTO struct {
	Favorites []SuggestionResponseDTO `json:"favorites"`
	Changed   bool                    `json:"changed"`
}

// DetailResponseDTO represents HTTP response for the detail view
type DetailResponseDTO struct {
	Suggestion SuggestionResponseDTO `json:"suggestion"`
	Back       string                `json:"back"`
}

// ErrorResponseDTO represents HTTP error response
type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toSuggestionResponseDTO(s domain.Suggestion) SuggestionResponseDTO {
	return SuggestionResponseDTO{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Category:      s.Category,
		Date:          s.Date.Format(domain.DateLayout),
		FormattedDate: domain.FormatDate(s.Date),
		Status:        s.Status.String(),
		StatusLabel:   s.Status.Label(),
		Likes:         s.Likes,
	}
}

func toSuggestionResponseDTOs(suggestions []domain.Suggestion) []SuggestionResponseDTO {
	result := make([]SuggestionResponseDTO, len(suggestions))
	for i, s := range suggestions {
		result[i] = toSuggestionResponseDTO(s)
	}
	return result
}
