package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/carhive/storefront/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a WebSocket client
type Client struct {
	UserID int64
	Role   models.Role
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub
}

// Hub maintains the set of active clients and pushes booking events
// to the users they belong to. Events are advisory: views still
// re-fetch from the rental API rather than trusting pushed state.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("User %d connected", client.UserID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("User %d disconnected", client.UserID)
		}
	}
}

// BroadcastToUser sends a message to every open page of one user.
func (h *Hub) BroadcastToUser(userID int64, message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.UserID == userID {
			select {
			case client.Send <- message:
			default:
				log.Printf("Warning: Could not send to user %d (channel full)", client.UserID)
			}
		}
	}
}

// BroadcastToRole sends a message to all users with the given role.
func (h *Hub) BroadcastToRole(role models.Role, message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.Role == role {
			select {
			case client.Send <- message:
			default:
				log.Printf("Warning: Could not send to user %d (channel full)", client.UserID)
			}
		}
	}
}

// ConnectedClients returns the number of connected clients
func (h *Hub) ConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Event is the wire format pushed to the browser.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// BookingStatusChanged tells the owning user their booking moved.
type BookingStatusChanged struct {
	BookingID int64                `json:"bookingId"`
	Status    models.BookingStatus `json:"status"`
}

// PaymentRecorded tells the owning user a payment settled.
type PaymentRecorded struct {
	BookingID int64   `json:"bookingId"`
	Amount    float64 `json:"amount"`
}

// NotifyBookingStatus pushes a status change to the booking's owner.
func (h *Hub) NotifyBookingStatus(userID int64, change BookingStatusChanged) {
	h.notify(userID, Event{Type: "booking_status_changed", Data: change})
}

// NotifyPaymentRecorded pushes a settled payment to the booking's owner.
func (h *Hub) NotifyPaymentRecorded(userID int64, recorded PaymentRecorded) {
	h.notify(userID, Event{Type: "payment_recorded", Data: recorded})
}

func (h *Hub) notify(userID int64, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", event.Type, err)
		return
	}
	h.BroadcastToUser(userID, data)
}

// HandleWebSocket upgrades the connection and registers the client.
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID int64, role models.Role) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Hub:    hub,
	}

	client.Hub.register <- client

	// Start goroutines for reading and writing
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so pings and closes are handled; the
// browser never sends application messages on this channel.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
