package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"statsbot/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub  *Hub
	conn ClientConn
	send chan utils.Event
	ID   string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub fans tracked-message events out to connected clients. It consumes the
// event bus channel, so the activity service stays unaware of the feed.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, eventBus *utils.EventBus) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	events := h.eventBus.SubscribeCh()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// slow client, drop the event rather than block the hub
				}
			}
		}
	}
}
