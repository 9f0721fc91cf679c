package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	NewSession(ctx context.Context, mode string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	MakeMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	PlayAIMove(ctx context.Context, id string) (*entity.Session, int, error)
	ResetSession(ctx context.Context, id, mode string) (*entity.Session, error)
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, req *Request) (Payload, error)
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *Request) (Payload, error)),
	}

	server.handlers["session:new"] = server.handleNewSession
	server.handlers["session:get"] = server.handleGetSession
	server.handlers["session:move"] = server.handleMove
	server.handlers["session:ai"] = server.handleAIMove
	server.handlers["session:reset"] = server.handleReset

	return server
}

func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", that.upgradeToWebSocket)

	return r
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - answers every message of one client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("client disconnected")
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		response := that.dispatch(ctx, data)
		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, data []byte) Response {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return that.errorResponse("", fmt.Errorf("%w: %w", errMalformedMessage, err))
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.errorResponse(message.Action, fmt.Errorf("%w: %q", errUnknownAction, message.Action))
	}

	req, err := decodeRequest(message.Payload)
	if err != nil {
		return that.errorResponse(message.Action, err)
	}

	payload, err := handler(ctx, req)
	if err != nil {
		return that.errorResponse(message.Action, err)
	}

	return Response{Action: message.Action, Payload: payload}
}
