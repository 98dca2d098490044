// Package ws serves the live task-event feed the board uses to stay
// current without polling.
package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard/internal/domain"
)

// Hub tracks connected feed clients and fans task events out to them.
// Registration and broadcast are serialized through the Run loop, so
// the clients map needs no locking.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's event loop. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("feed client connected",
				zap.String("user_id", client.userID.String()),
				zap.Int("total", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				close(client.done)
				h.logger.Info("feed client disconnected",
					zap.String("user_id", client.userID.String()),
					zap.Int("total", len(h.clients)))
			}

		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer: drop it, the feed replays nothing.
					delete(h.clients, client)
					close(client.send)
					close(client.done)
				}
			}

		case <-h.done:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
				close(client.done)
			}
			return
		}
	}
}

// Stop ends the Run loop and disconnects every client. Call it once,
// during server shutdown.
func (h *Hub) Stop() {
	close(h.done)
}

// TaskCreated, TaskUpdated and TaskDeleted implement service.Notifier.

func (h *Hub) TaskCreated(task *domain.Task) {
	h.publish(taskEvent(EventTaskCreated, task))
}

func (h *Hub) TaskUpdated(task *domain.Task) {
	h.publish(taskEvent(EventTaskUpdated, task))
}

func (h *Hub) TaskDeleted(id uuid.UUID) {
	h.publish(&Event{Type: EventTaskDeleted, Task: &TaskPayload{ID: id}})
}

func (h *Hub) publish(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("feed marshal failed", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("feed broadcast buffer full, dropping event",
			zap.String("type", event.Type))
	}
}
