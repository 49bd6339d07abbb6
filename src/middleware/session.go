package middleware

import (
	"net/http"

	"suggestion-app/src/logger"
	"suggestion-app/src/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// SessionIDHeader セッションIDを受け渡すヘッダー
	SessionIDHeader = "X-Session-ID"
	// SessionIDKey コンテキストのセッションIDキー
	SessionIDKey = "session_id"
	// ListViewKey コンテキストの一覧ビューキー
	ListViewKey = "list_view"
)

// SessionMiddleware 一覧ビューのセッションを解決するmiddleware
func SessionMiddleware(store *usecase.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader(SessionIDHeader)

		id, view, created, err := store.GetOrCreate(c.Request.Context(), requested)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			}).Error("セッションの解決に失敗")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		if created {
			logger.WithFields(logrus.Fields{
				"client_ip":    c.ClientIP(),
				"session_id":   id,
				"requested_id": requested,
			}).Debug("新しいセッションを割り当てました")
		}

		// リクエストコンテキストにセッションを設定
		c.Set(SessionIDKey, id)
		c.Set(ListViewKey, view)
		c.Header(SessionIDHeader, id)

		c.Next()
	}
}

// GetListView retrieves the list view resolved by SessionMiddleware
func GetListView(c *gin.Context) (*usecase.ListView, bool) {
	value, exists := c.Get(ListViewKey)
	if !exists {
		return nil, false
	}
	view, ok := value.(*usecase.ListView)
	return view, ok
}

// GetSessionID retrieves the session ID resolved by SessionMiddleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
