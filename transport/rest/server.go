package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type gameManager interface {
	NewGame(ctx context.Context, humanMark entity.Mark) (*usecase.TurnReport, error)
	GetGame(ctx context.Context, id string) (*usecase.TurnReport, error)
	MakeTurn(ctx context.Context, id string, row, column int) (*usecase.TurnReport, error)
	ResetGame(ctx context.Context, id string) (*usecase.TurnReport, error)
	EndGame(ctx context.Context, id string) error

	SelectMove(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error)
}

type Server struct {
	logger  *slog.Logger
	manager gameManager

	httpServer *http.Server
}

func New(logger *slog.Logger, manager gameManager) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		manager: manager,
	}
}

func (that *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Get("/ping", pingHandler)

	r.Route("/games", func(rr chi.Router) {
		rr.Post("/", that.createGame)
		rr.Get("/{id}", that.getGame)
		rr.Delete("/{id}", that.endGame)
		rr.Post("/{id}/moves", that.makeTurn)
		rr.Post("/{id}/reset", that.resetGame)
	})

	r.Post("/engine/move", that.selectMove)

	return r
}

// Start blocks until the server stops. A Shutdown is not reported as an error.
func (that *Server) Start(port string) error {
	that.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if that.httpServer == nil {
		return nil
	}

	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
