package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type uGame interface {
	Snapshot() (entity.GameView, entity.Scores)
	Scores() entity.Scores

	MakeMove(ctx context.Context, row, col int) (entity.GameView, error)
	NewGame(ctx context.Context) (entity.GameView, error)
	ApplySettings(ctx context.Context, config entity.GameConfig) (entity.GameView, error)
	ResetScores(ctx context.Context) (entity.Scores, error)

	Subscribe(listener func(game entity.GameView, scores entity.Scores))
}

type handlerFunc func(ctx context.Context, msg *Message, c *client) error

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	clientsMutex sync.Mutex
	clients      map[*client]struct{}
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
		clients:  make(map[*client]struct{}),
	}

	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameMove] = server.handleGameMove
	server.handlers[actionGameNew] = server.handleGameNew
	server.handlers[actionGameSettings] = server.handleGameSettings
	server.handlers[actionScoresGet] = server.handleScoresGet
	server.handlers[actionScoresReset] = server.handleScoresReset

	uGame.Subscribe(server.broadcast)

	return server
}

// Handler - returns the handler serving /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}

		that.closeClients()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn)
	that.register(c)
	go c.writePump()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	that.handleMessages(ctx, c)
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages")

	defer that.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, body, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			that.sendError(c, "", "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, c); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) register(c *client) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	that.clients[c] = struct{}{}
}

func (that *Server) unregister(c *client) {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if _, ok := that.clients[c]; ok {
		delete(that.clients, c)
		close(c.send)
	}
}

func (that *Server) closeClients() {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for c := range that.clients {
		delete(that.clients, c)
		close(c.send)
	}
}

// broadcast - pushes game and scores to every client. Clients whose buffer
// is full are dropped.
func (that *Server) broadcast(game entity.GameView, scores entity.Scores) {
	gameMsg, err := encodeMessage(actionGameState, ResponsePayload{Game: &game})
	if err != nil {
		that.logger.Error("failed to encode game", "error", err)
		return
	}

	scoresMsg, err := encodeMessage(actionScoresState, ResponsePayload{Scores: &scores})
	if err != nil {
		that.logger.Error("failed to encode scores", "error", err)
		return
	}

	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	for c := range that.clients {
		if !c.enqueue(gameMsg) || !c.enqueue(scoresMsg) {
			that.logger.Warn("dropping slow client")
			delete(that.clients, c)
			close(c.send)
		}
	}
}
