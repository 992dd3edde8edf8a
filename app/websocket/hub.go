package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event types pushed to connected counter displays.
const (
	EventOrderNew  = "order_new"
	EventFarmerNew = "farmer_new"
)

// Event is the JSON envelope broadcast to every client.
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Counter displays run on the LAN; origin checks happen at the
		// CORS layer for the REST API.
		return true
	},
}

// Hub fans events out to all connected websocket clients.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan Event
	register   chan *client
	unregister chan *client
	log        *logrus.Logger
	mu         sync.RWMutex
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		log:        log,
	}
}

// Run processes register/unregister/broadcast events until the
// channels close. Call it in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.log.WithField("clients", h.ClientCount()).Debug("websocket client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.log.WithField("clients", h.ClientCount()).Debug("websocket client disconnected")

		case event := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- event:
				default:
					// Slow client; drop the event rather than block
					// the counter.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues an event for every connected client. Never blocks.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	event := Event{Type: eventType, Timestamp: time.Now(), Data: data}
	select {
	case h.broadcast <- event:
	default:
		h.log.Warn("websocket broadcast queue full, event dropped")
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades an HTTP request to a websocket connection and
// registers it with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan Event, 16)}
	h.register <- c

	go c.writePump(h)
	go c.readPump(h)
}

func (c *client) writePump(h *Hub) {
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}
}

// readPump discards inbound messages; the stream is one-way. It exists
// to detect closed connections.
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
