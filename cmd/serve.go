package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "task-board.com/task-board/internal/configs"
	httpapi "task-board.com/task-board/internal/http"
	"task-board.com/task-board/internal/logger"
	repository "task-board.com/task-board/internal/repositories"
	"task-board.com/task-board/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		envLoaded := godotenv.Load() == nil

		cfg := config.Load()

		if err := logger.Init(cfg.LogDevelopment); err != nil {
			return err
		}
		defer logger.Sync()

		if !envLoaded {
			logger.Info(".env file not found, using environment variables")
		}

		database := config.New(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
