package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/msto63/sigfig/internal/precision/service"
	"github.com/msto63/sigfig/pkg/core/logging"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsMaxMessage   = 8 * 1024
)

// WebSocketHandler streams live previews of a keypad buffer
type WebSocketHandler struct {
	svc      *service.Service
	logger   *logging.Logger
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocket handler. Cross-origin
// connections are accepted only from allowedOrigins.
func NewWebSocketHandler(svc *service.Service, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		svc:    svc,
		logger: logging.New("sigfig-websocket"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || originAllowed(allowedOrigins, origin) {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

// WSMessage represents a client message
type WSMessage struct {
	Type    string          `json:"type"`    // "ping", "preview", "evaluate"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSInputPayload carries the current buffer
type WSInputPayload struct {
	Input string `json:"input"`
}

// WSResponse represents a server message
type WSResponse struct {
	Type    string      `json:"type"`    // "pong", "preview", "result", "error"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles the upgrade and serves the connection
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(r, conn)
}

// handleConnection answers messages in order until the client goes away
func (h *WebSocketHandler) handleConnection(r *http.Request, conn *websocket.Conn) {
	defer conn.Close()

	h.logger.Debug("WebSocket connection established", "remote", conn.RemoteAddr().String())

	conn.SetReadLimit(wsMaxMessage)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		switch msg.Type {
		case "ping":
			h.send(conn, WSResponse{Type: "pong"})

		case "preview":
			var p WSInputPayload
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid preview payload")
				continue
			}
			h.send(conn, WSResponse{Type: "preview", Payload: h.svc.Preview(p.Input)})

		case "evaluate":
			var p WSInputPayload
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid evaluate payload")
				continue
			}
			res, err := h.svc.Evaluate(r.Context(), p.Input)
			if err != nil {
				h.sendError(conn, "evaluation_failed", errorText(err))
				continue
			}
			h.send(conn, WSResponse{Type: "result", Payload: res})

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *WebSocketHandler) send(conn *websocket.Conn, resp WSResponse) {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Warn("WebSocket send error", "error", err)
	}
}

func (h *WebSocketHandler) sendError(conn *websocket.Conn, code, message string) {
	h.send(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
