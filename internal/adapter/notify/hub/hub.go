// Package hub streams simulation notifications to connected clients over
// WebSocket. The sink is purely observational: nothing a client sends feeds
// back into the simulation, so the read side only drains control frames.
package hub

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"galaxytrader/internal/app/ports"

	"github.com/gorilla/websocket"
)

type event struct {
	Message  string         `json:"message"`
	Severity ports.Severity `json:"severity"`
	At       time.Time      `json:"at"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
}

func New() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Notify implements ports.Notifier. Also mirrored to the server log so a
// headless run still shows the simulation's voice.
func (h *Hub) Notify(message string, severity ports.Severity) {
	log.Printf("notify[%s]: %s", severity, message)
	data, err := json.Marshal(event{Message: message, Severity: severity, At: time.Now()})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	default:
		// Slow consumers never stall the simulation.
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request into a notification subscription.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("hub: upgrade:", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 64)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

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
