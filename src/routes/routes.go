package routes

import (
	"suggestion-app/src/interface/handler"
	"suggestion-app/src/middleware"
	"suggestion-app/src/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options はルーティングの有効化フラグ
type Options struct {
	RateLimiter    *middleware.RateLimiter
	MetricsEnabled bool
}

// SetupRoutes sets up all routes of the suggestion app
func SetupRoutes(r *gin.Engine, sessions *usecase.SessionStore, suggestionHandler *handler.SuggestionHandler, detailHandler *handler.DetailHandler, opts Options) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(handler.NotFound)
	r.NoMethod(handler.MethodNotAllowed)

	// グローバルmiddlewareを適用
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	if opts.MetricsEnabled {
		r.Use(middleware.MetricsMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.GET("/health", handler.Health)

	public := r.Group("/")
	if opts.RateLimiter != nil {
		public.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
	}
	{
		public.GET("/", handler.Redirect) // GET / -> /home
		public.GET("/home", handler.Home)
		public.DELETE("/session", suggestionHandler.EndSession)

		// 詳細ビューは共有カタログを参照するためセッション不要
		public.GET("/listSuggestion/:id", detailHandler.GetSuggestion)
		public.GET("/listSuggestion/:id/back", detailHandler.GoBack)
	}

	// 一覧ビューはセッションごとの状態を持つ
	list := public.Group("/")
	list.Use(middleware.SessionMiddleware(sessions))
	{
		list.GET("/listSuggestion", suggestionHandler.ListSuggestions)
		list.POST("/listSuggestion/:id/like", suggestionHandler.ToggleLike)
		list.PUT("/listSuggestion/:id/favorite", suggestionHandler.AddToFavorites)
		list.DELETE("/listSuggestion/:id/favorite", suggestionHandler.RemoveFromFavorites)
		list.GET("/favorites", suggestionHandler.ListFavorites)
	}
}
