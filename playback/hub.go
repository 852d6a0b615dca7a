package playback

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/karalvik/npuzzle/board"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Renderers are local tooling; accept any origin.
		return true
	},
}

// Frame is one playback step as the renderer sees it.
type Frame struct {
	Step  int   `json:"step"`  // 1-based move number
	Total int   `json:"total"` // moves in the whole solution
	Size  int   `json:"size"`  // grid width
	Tiles []int `json:"tiles"` // row-major cells, 0 = blank
}

// newFrame flattens a board into a Frame.
func newFrame(b board.Board, step, total int) Frame {
	return Frame{Step: step, Total: total, Size: b.Size(), Tiles: b.Tiles()}
}

// Message is the envelope every WebSocket client receives.
type Message struct {
	Session string      `json:"session"`
	Event   string      `json:"event"`
	Frame   *Frame      `json:"frame,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Client is one WebSocket subscriber bound to a session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session string
}

// Hub maintains the set of active clients per session and fans broadcast
// messages out to them. All session-map mutation happens on the Run
// goroutine; the exported methods only write to channels.
type Hub struct {
	sessions   map[string]map[*Client]bool
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	log        *logrus.Logger
}

// NewHub creates a hub. A nil logger falls back to the logrus default.
func NewHub(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run serializes all hub state changes until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ServeWS upgrades an HTTP request to a WebSocket subscription on the
// given session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, session string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithFields(logrus.Fields{"session": session, "err": err}).Warn("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 256),
		session: session,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastFrame sends one playback frame to every client of a session.
func (h *Hub) BroadcastFrame(session string, f Frame) {
	h.broadcast <- &Message{Session: session, Event: "frame", Frame: &f}
}

// BroadcastEvent sends a custom event to every client of a session.
func (h *Hub) BroadcastEvent(session, event string, data interface{}) {
	h.broadcast <- &Message{Session: session, Event: event, Data: data}
}

func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.session] == nil {
		h.sessions[client.session] = make(map[*Client]bool)
	}
	h.sessions[client.session][client] = true
	h.log.WithFields(logrus.Fields{
		"session": client.session,
		"clients": len(h.sessions[client.session]),
	}).Debug("client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.session]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.sessions, client.session)
	}
	h.log.WithFields(logrus.Fields{
		"session": client.session,
		"clients": len(clients),
	}).Debug("client unregistered")
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.WithField("err", err).Error("marshal broadcast message")
		return
	}
	for client := range h.sessions[message.Session] {
		select {
		case client.send <- data:
		default:
			// Slow client: drop it rather than stall the session.
			h.unregisterClient(client)
		}
	}
}

// readPump drains (and discards) client messages to keep the connection
// and its pong handler alive.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithField("err", err).Debug("websocket read")
			}
			break
		}
	}
}

// writePump forwards hub messages to the connection and keeps it alive
// with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
