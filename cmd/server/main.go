// Package main - точка входа API-сервера TutorHub.
//
// Сервер собирает всё приложение: in-memory хранилища с демо-данными,
// шину доменных событий, Gemini-клиент для AI-подбора и REST API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/config"
	"github.com/findateacher/tutorhub/internal/application/command"
	"github.com/findateacher/tutorhub/internal/application/eventhandler"
	"github.com/findateacher/tutorhub/internal/application/query"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/infrastructure/external/gemini"
	"github.com/findateacher/tutorhub/internal/infrastructure/messaging"
	"github.com/findateacher/tutorhub/internal/infrastructure/persistence/memory"
	httpapi "github.com/findateacher/tutorhub/internal/interface/http"
	"github.com/findateacher/tutorhub/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.Must(string(cfg.App.Environment))
	defer func() { _ = log.Sync() }()

	log.Info("starting TutorHub API server",
		zap.String("env", string(cfg.App.Environment)),
		zap.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ХРАНИЛИЩА И ДЕМО-ДАННЫЕ
	// ─────────────────────────────────────────────────────────────────────────
	tutorRepo := memory.NewTutorRepository()
	userRepo := memory.NewUserRepository()
	requestRepo := memory.NewRequestRepository()
	chatRepo := memory.NewChatRepository()

	if cfg.App.SeedDemoData {
		if err := memory.Seed(ctx, tutorRepo, userRepo, requestRepo); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Info("demo dataset loaded")
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ШИНА ДОМЕННЫХ СОБЫТИЙ
	// ─────────────────────────────────────────────────────────────────────────
	eventBus := messaging.NewInMemoryEventBus(log)
	defer eventBus.Close()

	if err := eventBus.Subscribe(shared.EventRequestMatched,
		eventhandler.NewOnRequestMatchedHandler(log)); err != nil {
		return fmt.Errorf("failed to subscribe event handler: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. GEMINI КЛИЕНТ
	// Клиент создаётся всегда: без API-ключа вызовы падают сразу, а
	// обработчики превращают ошибку в запасной ответ.
	// ─────────────────────────────────────────────────────────────────────────
	geminiCfg := gemini.DefaultConfig(cfg.Gemini.APIKey)
	geminiCfg.BaseURL = cfg.Gemini.BaseURL
	geminiCfg.Model = cfg.Gemini.Model
	geminiCfg.Timeout = cfg.Gemini.Timeout
	geminiCfg.Logger = log
	geminiClient := gemini.NewClient(geminiCfg)

	// ─────────────────────────────────────────────────────────────────────────
	// 6. ОБРАБОТЧИКИ ПРИЛОЖЕНИЯ (CQRS)
	// ─────────────────────────────────────────────────────────────────────────
	deps := httpapi.Dependencies{
		SearchTutors: query.NewSearchTutorsHandler(tutorRepo),
		GetTutor:     query.NewGetTutorHandler(tutorRepo),
		SmartMatch:   query.NewSmartMatchHandler(tutorRepo, geminiClient, cfg.Gemini.Timeout, log),
		ListRequests: query.NewListRequestsHandler(requestRepo),
		ListSessions: query.NewListSessionsHandler(chatRepo, userRepo),

		ApplyAsTutor:       command.NewApplyAsTutorHandler(tutorRepo, eventBus, log),
		UpdateTutorProfile: command.NewUpdateTutorProfileHandler(tutorRepo, eventBus, log),
		ModerateTutor:      command.NewModerateTutorHandler(tutorRepo, eventBus, log),
		ModerateStudent:    command.NewModerateStudentHandler(userRepo, eventBus, log),
		SubmitRequest:      command.NewSubmitRequestHandler(requestRepo, userRepo, eventBus),
		AssignTutor:        command.NewAssignTutorHandler(requestRepo, tutorRepo, chatRepo, eventBus, log),
		StartDirectChat:    command.NewStartDirectChatHandler(chatRepo),
		SendMessage:        command.NewSendMessageHandler(chatRepo, eventBus, log),
		GenerateBio:        command.NewGenerateBioHandler(geminiClient, log),

		Logger: log,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 7. HTTP СЕРВЕР
	// ─────────────────────────────────────────────────────────────────────────
	serverCfg := httpapi.DefaultConfig()
	serverCfg.Host = cfg.HTTP.Host
	serverCfg.Port = cfg.HTTP.Port
	serverCfg.ReadTimeout = cfg.HTTP.ReadTimeout
	serverCfg.WriteTimeout = cfg.HTTP.WriteTimeout
	serverCfg.IdleTimeout = cfg.HTTP.IdleTimeout
	serverCfg.EnableCORS = cfg.HTTP.EnableCORS
	serverCfg.AllowedOrigins = cfg.HTTP.AllowedOrigins
	serverCfg.RateLimitPerMinute = cfg.HTTP.RateLimitPerMinute
	serverCfg.EnableSmartMatch = cfg.Features.IsEnabled(config.FeatureSmartMatch)
	serverCfg.EnableBioGeneration = cfg.Features.IsEnabled(config.FeatureBioGeneration)

	server := httpapi.NewServer(serverCfg, deps)
	errCh := server.StartAsync()

	log.Info("server is ready", zap.String("address", serverCfg.Address()))

	// ─────────────────────────────────────────────────────────────────────────
	// 8. ОЖИДАНИЕ ЗАВЕРШЕНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
