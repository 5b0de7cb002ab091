package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/video-quiz-bot/internal/config"
	"github.com/aliskhannn/video-quiz-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/video-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/video-quiz-bot/internal/i18n"
	"github.com/aliskhannn/video-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/video-quiz-bot/internal/logger"
	"github.com/aliskhannn/video-quiz-bot/internal/repository"
	"github.com/aliskhannn/video-quiz-bot/internal/service"
	"github.com/aliskhannn/video-quiz-bot/internal/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env == "local"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(telegram.Commands()); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	// Question sets.
	client := &http.Client{Timeout: cfg.Quiz.FetchTimeout}
	questionSets, err := repository.NewQuestionSetRepository(client, cfg.Quiz.BaseURL)
	if err != nil {
		return err
	}
	lg.Info("question sets source", zap.String("base_url", cfg.Quiz.BaseURL))

	// Chat preferences.
	var settingsRepo service.SettingsRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := repository.NewSettingsRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			return err
		}
		settingsRepo = repo
		lg.Info("chat preferences stored in postgres")
	} else {
		settingsRepo = repository.NewMemorySettingsRepository()
		lg.Info("chat preferences kept in memory")
	}

	settingsService := service.NewSettingsService(settingsRepo, cfg.DefaultLanguage)
	flows := storage.NewFlowStorage(func() *service.QuizFlow {
		return service.NewQuizFlow(questionSets)
	})
	translator := i18n.New()

	handler := telegram.NewHandler(
		bot,
		lg,
		flows,
		settingsService,
		translator,
		cfg.Quiz.Catalog,
		cfg.DefaultLanguage,
		cfg.Quiz.FetchTimeout,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handler.Run(gctx)
	})

	if cfg.HTTP.Addr != "" {
		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpapi.NewRouter(httpapi.NewHandler(cfg.Quiz.Catalog, translator, flows, cfg.DefaultLanguage, lg), cfg.HTTP.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			lg.Info("status server listening", zap.String("addr", cfg.HTTP.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
