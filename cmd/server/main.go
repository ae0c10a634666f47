package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "pollboard/docs"
	"pollboard/internal/config"
	"pollboard/internal/domain/poll"
	"pollboard/internal/domain/user"
	"pollboard/internal/domain/vote"
	api "pollboard/internal/http"
	"pollboard/internal/metrics"
	"pollboard/internal/platform/database"
	jwtpkg "pollboard/internal/platform/jwt"
	"pollboard/internal/repository/postgres"
	"pollboard/internal/worker"
)

// @title           Pollboard API
// @version         1.0
// @description     Multiple-choice polls with one-vote-per-identity enforcement
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if cfg.Env == "local" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	api.SetLogger(logger)
	metrics.Register()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	pollRepo := postgres.NewPollRepo(db)
	voteRepo := postgres.NewVoteRepo(db)

	userSvc := user.NewService(userRepo)
	pollSvc := poll.NewService(pollRepo, voteRepo)
	voteSvc := vote.NewService(voteRepo, pollRepo, cfg.AllowAnonymousVotes)

	jwtMgr := jwtpkg.NewManager(cfg.JWTSecret, "pollboard", cfg.JWTTTL)

	voteCh := make(chan worker.VoteEvent, 100)
	statsWorker := worker.NewStatsWorker(voteCh, logger)

	router := api.NewRouter(cfg, userSvc, pollSvc, voteSvc, jwtMgr, voteCh, db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go statsWorker.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}

	logger.Info("server stopped")
}
