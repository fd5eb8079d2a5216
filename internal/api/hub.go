/*
Package api
File: hub.go
Description:
    The WebSocket Hub is the real-time half of the mission boundary.

    It maintains a registry of connected clients (mission-control consoles
    watching the rover) and a broadcast channel. The tick loop publishes a
    'mission_pulse' snapshot frame after every simulated hour; the Hub fans
    it out to every open socket.

    Architecture:
    - Hub: the singleton manager.
    - Client: one console connection.
    - ServeWs: the HTTP handler that upgrades a GET request to a WebSocket.
*/

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/everforgeworks/regolith-rover/internal/game"
)

// Message is the standard JSON envelope for every frame pushed to clients.
type Message struct {
	Type    string      `json:"type"`    // Event type (e.g., "mission_pulse")
	Payload interface{} `json:"payload"` // The actual data (snapshot, string, ...)
}

// Client represents a single connected console.
// It acts as a middleman between the websocket connection and the Hub.
type Client struct {
	hub  *Hub            // Reference to the central Hub
	conn *websocket.Conn // The actual low-level WebSocket connection
	send chan []byte     // Buffered channel for outbound frames
}

// Hub maintains the set of active clients and broadcasts frames to them.
type Hub struct {
	// Registered clients map. map[*Client]bool keeps add/remove O(1).
	clients map[*Client]bool

	// Broadcast is the inbound frame channel. Capitalized so the tick loop
	// in main.go can push pulses into it.
	Broadcast chan []byte

	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new Hub instance.
// Call once in main.go and run as a goroutine.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run is the main event loop for the Hub.
// It blocks, so it must be run in a goroutine: `go hub.Run()`
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Println("WS: New Connection Registered")

		case client := <-h.unregister:
			// Clean up resources to prevent leaks.
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: assume the client hung or disconnected.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// PushPulse marshals a snapshot into a mission_pulse frame and broadcasts
// it. Marshal failures are logged and dropped; the next tick supersedes.
func (h *Hub) PushPulse(snap game.Snapshot) {
	frame, err := json.Marshal(Message{Type: "mission_pulse", Payload: snap})
	if err != nil {
		log.Printf("WS: pulse marshal error: %v", err)
		return
	}
	h.Broadcast <- frame
}

// upgrader configures the WebSocket handshake.
// CheckOrigin returns true to allow connections from any host (CORS permissive for development).
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs handles the HTTP request that initiates a WebSocket connection.
// It "upgrades" the HTTP connection to a persistent TCP connection.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS Upgrade Error:", err)
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	// Start the read/write pumps in their own goroutines.
	// This ensures one slow client doesn't block the entire server.
	go client.writePump()
	go client.readPump()
}

// readPump drains the websocket connection. Intents arrive over the REST
// endpoints, not the socket, so inbound frames are logged and discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WS Error: %v", err)
			}
			break
		}
		log.Printf("WS: ignoring inbound frame: %s", string(message))
	}
}

// writePump pumps frames from the hub to the websocket connection.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	// Range over the channel. This loop exits when c.send is closed.
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
}
