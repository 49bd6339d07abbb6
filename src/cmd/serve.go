package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"suggestion-app/src/config"
	"suggestion-app/src/infrastructure/repository"
	"suggestion-app/src/interface/handler"
	"suggestion-app/src/logger"
	"suggestion-app/src/middleware"
	"suggestion-app/src/routes"
	"suggestion-app/src/storage"
	"suggestion-app/src/usecase"
	"suggestion-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *logLevel)
		},
	}
}

func runServe(parent context.Context, logLevel string) error {
	if parent == nil {
		parent = context.Background()
	}

	// 設定を読み込み
	cfg := config.LoadConfig()
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("設定が不正です: %w", err)
	}

	// ロガーを初期化
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.Directory); err != nil {
		return fmt.Errorf("ロガーの初期化に失敗: %w", err)
	}
	defer logger.CloseLogger()

	logger.Log.Info("アプリケーションを開始しています")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// S3アップローダーを初期化（設定が有効な場合）
	var uploader *storage.LogUploader
	if cfg.Log.UploadEnabled {
		var err error
		uploader, err = storage.NewLogUploader(&storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			UseSSL:          cfg.S3.UseSSL,
		}, logger.Log)
		if err != nil {
			logger.Log.WithError(err).Error("S3アップローダーの初期化に失敗")
		} else {
			uploader.StartPeriodicUpload(ctx, cfg.Log.Directory, cfg.Log.UploadInterval, cfg.Log.UploadMaxAge, logger.GetCurrentLogFile)
		}
	}

	// 依存関係を組み立て
	repo, err := repository.NewCatalogRepository(logger.Log)
	if err != nil {
		return fmt.Errorf("カタログの読み込みに失敗: %w", err)
	}
	sessions := usecase.NewSessionStore(repo, cfg.Session.MaxSessions, cfg.Session.TTL, logger.Log)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, sessions,
		handler.NewSuggestionHandler(sessions, validator.NewCustomValidator(), logger.Log),
		handler.NewDetailHandler(repo, logger.Log),
		routes.Options{RateLimiter: limiter, MetricsEnabled: cfg.Metrics.Enabled},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("port", cfg.Server.Port).Info("サーバーを開始します")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	case <-ctx.Done():
		logger.Log.Info("シャットダウンシグナルを受信しました")
	}

	// グレースフルシャットダウン
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("シャットダウンに失敗")
	}

	// 最後のログアップロードを実行
	if uploader != nil {
		logger.Log.Info("最後のログアップロードを実行中...")
		if _, err := uploader.UploadOldLogs(shutdownCtx, cfg.Log.Directory, 0, logger.GetCurrentLogFile()); err != nil {
			logger.Log.WithError(err).Error("最後のログアップロードに失敗")
		}
	}

	logger.Log.Info("サーバーを停止しました")
	return nil
}
