package ws

import (
	"context"
	"encoding/json"
	"errors"
	"intakeflow/internal/service"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	frameTimeout   = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// AnswerPayload is the payload of an "answer" frame
type AnswerPayload struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// ErrorPayload is sent back to a single connection when a frame fails
type ErrorPayload struct {
	Error string `json:"error"`
}

// Handler handles WebSocket connections
type Handler struct {
	hub       *Hub
	wizardSvc *service.WizardService
	logger    *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, wizardSvc *service.WizardService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		hub:       hub,
		wizardSvc: wizardSvc,
		logger:    logger,
	}
}

// SessionWS handles GET /v1/ws/sessions/{id}
func (h *Handler) SessionWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := h.wizardSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := &Connection{
		SessionID: id,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}

	h.hub.Register(conn)
	h.sendTo(conn, MsgConnected, view)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			break
		}
		h.handleFrame(conn, data)
	}
}

func (h *Handler) handleFrame(conn *Connection, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.sendTo(conn, MsgError, ErrorPayload{Error: "invalid message"})
		return
	}

	switch msg.Type {
	case MsgAnswer:
		var p AnswerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			h.sendTo(conn, MsgError, ErrorPayload{Error: "invalid answer payload"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
		defer cancel()
		// The outcome reaches this connection through the session broadcast
		if _, err := h.wizardSvc.SetAnswer(ctx, conn.SessionID, p.QuestionID, p.Answer); err != nil {
			h.sendTo(conn, MsgError, ErrorPayload{Error: err.Error()})
		}
	default:
		h.sendTo(conn, MsgError, ErrorPayload{Error: "unknown message type " + string(msg.Type)})
	}
}

// sendTo queues a message for one connection only
func (h *Handler) sendTo(conn *Connection, msgType MessageType, payload interface{}) {
	msg, err := newMessage(msgType, payload)
	if err != nil {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case conn.Send <- data:
	default:
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
