package handler

import (
	"net/http"
	"time"

	"suggestion-app/src/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HomeRoute is the landing route
const HomeRoute = "/home"

// Redirect sends the root path to the landing view
func Redirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, HomeRoute)
}

// Home renders the static landing view
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bienvenue",
		"service": "suggestion-app",
		"links": gin.H{
			"suggestions": "/listSuggestion",
			"favorites":   "/favorites",
		},
	})
}

// Health ヘルスチェック
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// NotFound renders the not-found view for unmatched routes
func NotFound(c *gin.Context) {
	logger.WithFields(logrus.Fields{
		"method":    c.Request.Method,
		"uri":       c.Request.RequestURI,
		"client_ip": c.ClientIP(),
	}).Warn("404: ルートが見つかりません")
	c.JSON(http.StatusNotFound, ErrorResponseDTO{
		Error:   "Route not found",
		Message: "Page introuvable",
	})
}

// MethodNotAllowed renders the 405 response
func MethodNotAllowed(c *gin.Context) {
	logger.WithFields(logrus.Fields{
		"method":    c.Request.Method,
		"uri":       c.Request.RequestURI,
		"client_ip": c.ClientIP(),
	}).Warn("405: サポートされていないメソッド")
	c.JSON(http.StatusMethodNotAllowed, ErrorResponseDTO{
		Error: "Method not allowed",
	})
}
