package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stickynotes/internal/config"
	"stickynotes/internal/db"
	"stickynotes/internal/handler"
	"stickynotes/internal/job"
	"stickynotes/internal/pkg/logger"
	"stickynotes/internal/repo"
	"stickynotes/internal/schedule"
	"stickynotes/internal/service"
)

const purgeSchedule = "30 3 * * *"

func main() {
	rootCmd := &cobra.Command{
		Use:   "stickynotes",
		Short: "stickynotes backend server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the api server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; most deployments configure through the OS env
			_ = godotenv.Load()
			logger.Init()
			defer func() { _ = logger.Log.Sync() }()

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServer(cfg)
		},
	}

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cfg config.Config) error {
	conn, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = conn.Close() }()
	if err := db.ApplyMigrations(conn); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	accountRepo := repo.NewAccountRepo(conn)
	noteRepo := repo.NewNoteRepo(conn)

	authService := service.NewAuthService(accountRepo, []byte(cfg.SecretKey), cfg.TokenTTL)
	noteService := service.NewNoteService(noteRepo)

	router := handler.NewRouter(handler.RouterDeps{
		Auth:        handler.NewAuthHandler(authService),
		Notes:       handler.NewNoteHandler(noteService),
		Accounts:    accountRepo,
		JWTSecret:   []byte(cfg.SecretKey),
		CORSOrigins: cfg.CORSOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewNotePurgeJob(noteRepo, cfg.NotePurgeAfter), purgeSchedule); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}
	go func() {
		logger.L().Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.L().Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
