package handler

import (
	"net/http"

	"suggestion-app/src/domain"
	"suggestion-app/src/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DetailHandler handles HTTP requests of the suggestion detail view
type DetailHandler struct {
	repo   domain.SuggestionRepository
	logger *logrus.Logger
}

// NewDetailHandler creates a new detail handler
func NewDetailHandler(repo domain.SuggestionRepository, logger *logrus.Logger) *DetailHandler {
	return &DetailHandler{
		repo:   repo,
		logger: logger,
	}
}

// ginNavigator はDetailViewの画面遷移をリダイレクトに変換する
type ginNavigator struct {
	c *gin.Context
}

func (n ginNavigator) Navigate(path string) {
	n.c.Redirect(http.StatusFound, path)
}

// GetSuggestion renders one suggestion or the not-found response
func (h *DetailHandler) GetSuggestion(c *gin.Context) {
	raw := c.Param("id")

	view := usecase.NewDetailView(h.repo)
	if err := view.ActivateFromParam(c.Request.Context(), raw); err != nil {
		h.logger.WithError(err).WithField("suggestion_id", raw).Error("サジェスションの取得に失敗")
		c.JSON(http.StatusInternalServerError, ErrorResponseDTO{
			Error: "Failed to get suggestion",
		})
		return
	}

	if !view.Found() {
		h.logger.WithField("suggestion_id", raw).Info("サジェスションが見つかりません")
		c.JSON(http.StatusNotFound, ErrorResponseDTO{
			Error:   "Suggestion not found",
			Message: "La suggestion demandée n'existe pas",
		})
		return
	}

	c.JSON(http.StatusOK, DetailResponseDTO{
		Suggestion: toSuggestionResponseDTO(*view.Suggestion()),
		Back:       usecase.ListRoute,
	})
}

// GoBack navigates back to the list
func (h *DetailHandler) GoBack(c *gin.Context) {
	usecase.NewDetailView(h.repo).GoBack(ginNavigator{c: c})
}
