package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var (
	ErrAddrNotFound     = errors.New("redis address string is empty")
	ErrUnknownCacheType = errors.New("unknown move cache driver")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	computerMark, err := entity.ParseMark(conf.Bot.Mark)
	if err != nil || !computerMark.IsPlayer() {
		return fmt.Errorf("%w: bot mark %q", apperror.ErrInvalidMark, conf.Bot.Mark)
	}

	moveCache, closeCache, err := newMoveCache(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	gameService := service.NewGameService(repository.NewGameRepository())
	botService := service.NewBotService(logger, moveCache)
	gameManager := usecase.NewGameManager(logger, gameService, botService, computerMark)

	go evictIdleGames(ctx, log, gameManager, conf.Sessions.IdleTTL)

	restServer := rest.New(logger, gameManager)
	wsServer := websocket.New(logger, gameManager)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if shutdownErr := restServer.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error("could not stop HTTP server", "error", shutdownErr)
		}

		if shutdownErr := wsServer.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error("could not stop WebSocket server", "error", shutdownErr)
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newMoveCache builds the configured cache. The returned func releases it.
func newMoveCache(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveCache, func(), error) {
	switch conf.MoveCache.Driver {
	case config.CacheDriverMemory, "":
		log.Info("Using in-memory move cache")
		return repository.NewMemoryMoveCache(), func() {}, nil
	case config.CacheDriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("Using redis move cache", "addr", redisAddrString, "ttl", conf.MoveCache.TTL)

		closeFn := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewRedisMoveCache(redisStorage, conf.MoveCache.TTL), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCacheType, conf.MoveCache.Driver)
	}
}

// evictIdleGames sweeps at half the TTL, at most once a second, until ctx is done.
func evictIdleGames(ctx context.Context, log *slog.Logger, gameManager *usecase.GameManager, idleTTL time.Duration) {
	if idleTTL <= 0 {
		return
	}

	ticker := time.NewTicker(max(idleTTL/2, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := gameManager.EvictIdleGames(ctx, now.Add(-idleTTL)); err != nil {
				log.Error("could not evict idle games", "error", err)
			}
		}
	}
}
