package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 2 * pingInterval
	writeWait    = 10 * time.Second
	sendBuffer   = 8
)

type gameManager interface {
	NewGame(ctx context.Context, humanMark entity.Mark) (*usecase.TurnReport, error)
	GetGame(ctx context.Context, id string) (*usecase.TurnReport, error)
	MakeTurn(ctx context.Context, id string, row, column int) (*usecase.TurnReport, error)
	ResetGame(ctx context.Context, id string) (*usecase.TurnReport, error)
	EndGame(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, client *client, payload *RequestPayload) ResponsePayload

type Server struct {
	logger   *slog.Logger
	manager  gameManager
	upgrader websocket.Upgrader

	handlers   map[string]handlerFunc
	httpServer *http.Server
}

func New(logger *slog.Logger, manager gameManager) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionNewGame: server.handleNewGame,
		actionState:   server.handleState,
		actionTurn:    server.handleTurn,
		actionReset:   server.handleReset,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server. A Shutdown is not reported as an error.
func (that *Server) Start(port string) error {
	that.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections. Hijacked websocket connections are not
// tracked by net/http and end when their peers go away.
func (that *Server) Shutdown(ctx context.Context) error {
	if that.httpServer == nil {
		return nil
	}

	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// client is one connection. It owns at most one game session.
type client struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	gameID string
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	go func() {
		defer close(c.done)

		if err := that.writeLoop(c); err != nil {
			log.Debug("writer stopped", "error", err)
			// unblocks the reader
			_ = conn.Close()
		}
	}()

	ctx := context.WithoutCancel(r.Context())

	if err = that.readLoop(ctx, c); err != nil {
		log.Debug("reader stopped", "error", err)
	}

	close(c.send)
	<-c.done
	_ = conn.Close()

	that.handleDisconnect(ctx, c)
}

func (that *Server) readLoop(ctx context.Context, c *client) error {
	log := that.logger.With("method", "readLoop")

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.reply(c, actionError, errorPayload(errMalformedMessage))
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.reply(c, message.Action, errorPayload(errUnknownAction))
			continue
		}

		var payload RequestPayload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				that.reply(c, message.Action, errorPayload(fmt.Errorf("%w: %w", errMalformedMessage, err)))
				continue
			}
		}

		that.reply(c, message.Action, handler(ctx, c, &payload))
	}
}

// writeLoop is the only writer of the connection. It pings when idle so
// proxies keep the socket open while the human is thinking.
func (that *Server) writeLoop(c *client) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return nil
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("failed to write ping: %w", err)
			}
		}
	}
}

func (that *Server) reply(c *client, action string, payload ResponsePayload) {
	data, err := json.Marshal(Response{Action: action, Payload: payload})
	if err != nil {
		that.logger.Error("failed to marshal response", "action", action, "error", err)
		return
	}

	select {
	case c.send <- data:
	case <-c.done:
	}
}
