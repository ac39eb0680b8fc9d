package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	Game() entity.GameView
	Scores() entity.Scores

	MakeMove(ctx context.Context, row, col int) (entity.GameView, error)
	NewGame(ctx context.Context) (entity.GameView, error)
	ApplySettings(ctx context.Context, config entity.GameConfig) (entity.GameView, error)
	ResetScores(ctx context.Context) (entity.Scores, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Handler - builds the router with every route and middleware attached.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(that.recovery)
	router.Use(logging(that.logger))

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/game", that.getGame).Methods(http.MethodGet)
	api.HandleFunc("/game/moves", that.makeMove).Methods(http.MethodPost)
	api.HandleFunc("/game/new", that.newGame).Methods(http.MethodPost)
	api.HandleFunc("/game/settings", that.applySettings).Methods(http.MethodPut)
	api.HandleFunc("/scores", that.getScores).Methods(http.MethodGet)
	api.HandleFunc("/scores", that.resetScores).Methods(http.MethodDelete)

	return router
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
