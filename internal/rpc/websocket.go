package rpc

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Streams clients can subscribe to.
const (
	StreamPrices    = "prices"
	StreamTransfers = "transfers"
	StreamAuction   = "auction"
	StreamFees      = "fees"
	StreamAdmin     = "admin"
)

const (
	wsReadLimit    = 64 * 1024
	wsPongWait     = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsWriteWait    = 10 * time.Second
	wsSendBuffer   = 256
)

var knownStreams = map[string]bool{
	StreamPrices:    true,
	StreamTransfers: true,
	StreamAuction:   true,
	StreamFees:      true,
	StreamAdmin:     true,
}

// wsCommand is a client message: subscribe, unsubscribe or ping.
type wsCommand struct {
	Command string   `json:"command"`
	ID      any      `json:"id,omitempty"`
	Streams []string `json:"streams,omitempty"`
}

// wsSession is one websocket client.
type wsSession struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	mu      sync.RWMutex
	streams map[string]bool
	done    chan struct{}
	once    sync.Once
}

func (c *wsSession) subscribed(stream string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.streams[stream]
}

func (c *wsSession) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// WebsocketServer upgrades connections and fans events out to them.
type WebsocketServer struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*wsSession
}

// NewWebsocketServer creates the websocket endpoint.
func NewWebsocketServer(log zerolog.Logger) *WebsocketServer {
	return &WebsocketServer{
		log: log.With().Str("component", "websocket").Logger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*wsSession),
	}
}

// ServeHTTP handles the websocket upgrade.
func (ws *WebsocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ws.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	sess := &wsSession{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, wsSendBuffer),
		streams: make(map[string]bool),
		done:    make(chan struct{}),
	}

	ws.mu.Lock()
	ws.sessions[sess.id] = sess
	ws.mu.Unlock()

	ws.log.Debug().Str("session", sess.id).Msg("websocket session opened")

	go ws.writePump(sess)
	go ws.readPump(sess)
}

func (ws *WebsocketServer) readPump(sess *wsSession) {
	defer ws.dropSession(sess)

	sess.conn.SetReadLimit(wsReadLimit)
	sess.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	sess.conn.SetPongHandler(func(string) error {
		sess.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		_, message, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ws.log.Debug().Str("session", sess.id).Err(err).Msg("websocket read error")
			}
			return
		}
		ws.handleCommand(sess, message)
	}
}

func (ws *WebsocketServer) writePump(sess *wsSession) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	defer ws.dropSession(sess)

	for {
		select {
		case <-sess.done:
			return
		case message := <-sess.send:
			sess.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := sess.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			sess.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ws *WebsocketServer) handleCommand(sess *wsSession, message []byte) {
	var cmd wsCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		ws.sendError(sess, nil, "invalidParams", "Invalid JSON: "+err.Error())
		return
	}

	switch cmd.Command {
	case "subscribe":
		ws.updateStreams(sess, cmd, true)
	case "unsubscribe":
		ws.updateStreams(sess, cmd, false)
	case "ping":
		ws.sendJSON(sess, map[string]any{"type": "response", "id": cmd.ID, "status": "success"})
	default:
		ws.sendError(sess, cmd.ID, "unknownCmd", "Unknown command: "+cmd.Command)
	}
}

func (ws *WebsocketServer) updateStreams(sess *wsSession, cmd wsCommand, subscribe bool) {
	for _, stream := range cmd.Streams {
		if !knownStreams[stream] {
			ws.sendError(sess, cmd.ID, "invalidParams", "Unknown stream: "+stream)
			return
		}
	}

	sess.mu.Lock()
	for _, stream := range cmd.Streams {
		if subscribe {
			sess.streams[stream] = true
		} else {
			delete(sess.streams, stream)
		}
	}
	sess.mu.Unlock()

	ws.sendJSON(sess, map[string]any{
		"type":    "response",
		"id":      cmd.ID,
		"status":  "success",
		"streams": cmd.Streams,
	})
}

// Broadcast sends a payload to every session subscribed to the stream.
// Slow sessions are skipped rather than stalling the publisher.
func (ws *WebsocketServer) Broadcast(stream string, payload []byte) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	for _, sess := range ws.sessions {
		if !sess.subscribed(stream) {
			continue
		}
		select {
		case sess.send <- payload:
		default:
			ws.log.Warn().Str("session", sess.id).Str("stream", stream).Msg("dropping event for slow websocket session")
		}
	}
}

// CloseAll terminates every session; used during shutdown.
func (ws *WebsocketServer) CloseAll() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for id, sess := range ws.sessions {
		sess.close()
		delete(ws.sessions, id)
	}
}

func (ws *WebsocketServer) dropSession(sess *wsSession) {
	sess.close()

	ws.mu.Lock()
	delete(ws.sessions, sess.id)
	ws.mu.Unlock()

	ws.log.Debug().Str("session", sess.id).Msg("websocket session closed")
}

func (ws *WebsocketServer) sendJSON(sess *wsSession, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		ws.log.Error().Err(err).Msg("failed to marshal websocket message")
		return
	}
	select {
	case sess.send <- data:
	case <-sess.done:
	default:
		ws.dropSession(sess)
	}
}

func (ws *WebsocketServer) sendError(sess *wsSession, id any, errorString, message string) {
	payload := map[string]any{
		"type":          "response",
		"status":        "error",
		"error":         errorString,
		"error_message": message,
	}
	if id != nil {
		payload["id"] = id
	}
	ws.sendJSON(sess, payload)
}
