package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
	"github.com/rocketscienceinc/tictactoe-board/transport/websocket"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrUnknownDriver = errors.New("unknown storage driver")
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

	kvStorage, err := OpenStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = kvStorage.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	ledger := NewScoreLedger(logger, conf, kvStorage)
	scores := ledger.Load(ctx)
	log.Info("Scores loaded", "player1", scores.Player1, "player2", scores.Player2)

	gameManager, err := usecase.NewGameManager(logger, ledger, conf.Game.ToGameConfig())
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	// websocket server subscribes to the manager before any request arrives
	wsServer := websocket.New(logger, gameManager)
	restServer := rest.New(logger, gameManager)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
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

// OpenStorage - connects the key-value store selected by storage.driver.
func OpenStorage(ctx context.Context, conf *config.Config) (storage.KeyValue, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, err
		}

		return redisStorage, nil
	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, err
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, err
		}

		return sqliteStorage, nil
	case config.DriverMemory:
		return storage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Storage.Driver)
	}
}

func NewScoreLedger(logger *slog.Logger, conf *config.Config, kvStorage storage.KeyValue) *usecase.ScoreLedger {
	return usecase.NewScoreLedger(logger, repository.NewScoreRepository(kvStorage, conf.Storage.ScoresKey))
}
