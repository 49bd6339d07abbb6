package handler

import (
	"errors"
	"net/http"

	"suggestion-app/src/middleware"
	"suggestion-app/src/usecase"
	"suggestion-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SuggestionHandler handles HTTP requests of the suggestion list view
type SuggestionHandler struct {
	sessions  *usecase.SessionStore
	validator *validator.CustomValidator
	logger    *logrus.Logger
}

// NewSuggestionHandler creates a new suggestion list handler
func NewSuggestionHandler(sessions *usecase.SessionStore, v *validator.CustomValidator, logger *logrus.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		sessions:  sessions,
		validator: v,
		logger:    logger,
	}
}

// ListSuggestions returns the list view, refiltering when a search term is given
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	view, ok := h.listView(c)
	if !ok {
		return
	}

	var query ListQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid query parameters",
			Message: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(query); err != nil {
		h.logger.WithError(err).Warn("検索語のバリデーションに失敗")
		c.JSON(http.StatusBadRequest, err)
		return
	}

	// searchパラメータがある場合のみ検索語を更新する
	if _, present := c.GetQuery("search"); present {
		view.SetSearchTerm(query.Search)
	}

	state := view.State()
	items := make([]ListItemDTO, len(state.Suggestions))
	for i, s := range state.Suggestions {
		items[i] = ListItemDTO{
			SuggestionResponseDTO: toSuggestionResponseDTO(s),
			Liked:                 state.IsLiked(s.ID),
			Favorite:              state.IsInFavorites(s.ID),
		}
	}

	c.JSON(http.StatusOK, ListResponseDTO{
		SessionID:   middleware.GetSessionID(c),
		SearchTerm:  state.SearchTerm,
		Suggestions: items,
		Favorites:   toSuggestionResponseDTOs(state.Favorites),
		Count:       len(items),
		Total:       state.Total,
	})
}

// ToggleLike likes or unlikes a suggestion
func (h *SuggestionHandler) ToggleLike(c *gin.Context) {
	view, ok := h.listView(c)
	if !ok {
		return
	}
	id, ok := h.suggestionID(c)
	if !ok {
		return
	}

	s, liked, err := view.ToggleLike(id)
	if err != nil {
		h.respondError(c, err, id, "Failed to toggle like")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"suggestion_id": id,
		"session_id":    middleware.GetSessionID(c),
		"liked":         liked,
		"likes":         s.Likes,
	}).Info("いいねを切り替えました")

	c.JSON(http.StatusOK, LikeResponseDTO{
		Suggestion: toSuggestionResponseDTO(s),
		Liked:      liked,
	})
}

// AddToFavorites adds a suggestion to the session favorites
func (h *SuggestionHandler) AddToFavorites(c *gin.Context) {
	view, ok := h.listView(c)
	if !ok {
		return
	}
	id, ok := h.suggestionID(c)
	if !ok {
		return
	}

	added, err := view.AddToFavorites(id)
	if err != nil {
		h.respondError(c, err, id, "Failed to add favorite")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"suggestion_id": id,
		"session_id":    middleware.GetSessionID(c),
		"changed":       added,
	}).Info("お気に入りに追加しました")

	c.JSON(http.StatusOK, FavoritesResponseDTO{
		Favorites: toSuggestionResponseDTOs(view.Favorites()),
		Changed:   added,
	})
}

// RemoveFromFavorites removes a suggestion from the session favorites
func (h *SuggestionHandler) RemoveFromFavorites(c *gin.Context) {
	view, ok := h.listView(c)
	if !ok {
		return
	}
	id, ok := h.suggestionID(c)
	if !ok {
		return
	}

	removed, err := view.RemoveFromFavorites(id)
	if err != nil {
		h.respondError(c, err, id, "Failed to remove favorite")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"suggestion_id": id,
		"session_id":    middleware.GetSessionID(c),
		"changed":       removed,
	}).Info("お気に入りから削除しました")

	c.JSON(http.StatusOK, FavoritesResponseDTO{
		Favorites: toSuggestionResponseDTOs(view.Favorites()),
		Changed:   removed,
	})
}

// ListFavorites returns the session favorites in insertion order
func (h *SuggestionHandler) ListFavorites(c *gin.Context) {
	view, ok := h.listView(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FavoritesResponseDTO{
		Favorites: toSuggestionResponseDTOs(view.Favorites()),
	})
}

// EndSession tears down the caller's list view
func (h *SuggestionHandler) EndSession(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionIDHeader)
	if sessionID == "" || !h.sessions.Delete(sessionID) {
		c.JSON(http.StatusNotFound, ErrorResponseDTO{
			Error: "Session not found",
		})
		return
	}

	h.logger.WithField("session_id", sessionID).Info("セッションを終了しました")
	c.Status(http.StatusNoContent)
}

// Helper methods

func (h *SuggestionHandler) listView(c *gin.Context) (*usecase.ListView, bool) {
	view, ok := middleware.GetListView(c)
	if !ok {
		h.logger.Error("セッションが解決されていません")
		c.JSON(http.StatusInternalServerError, ErrorResponseDTO{
			Error: "Session unavailable",
		})
		return nil, false
	}
	return view, true
}

func (h *SuggestionHandler) suggestionID(c *gin.Context) (int, bool) {
	id, ok := usecase.ParseSuggestionID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponseDTO{
			Error:   "Suggestion not found",
			Message: "Suggestion ID must be a number",
		})
		return 0, false
	}
	return id, true
}

func (h *SuggestionHandler) respondError(c *gin.Context, err error, id int, message string) {
	h.logger.WithError(err).WithField("suggestion_id", id).Warn(message)

	if errors.Is(err, usecase.ErrSuggestionNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponseDTO{
			Error: "Suggestion not found",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponseDTO{
		Error: message,
	})
}
