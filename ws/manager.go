package ws

import (
	"context"
	"sync"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services"
)

const broadcastBuffer = 64

// WebSocketManager fans collection events out to the connected dashboards.
// Run owns the client set; Publish never blocks the caller.
type WebSocketManager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan services.Event
	done       chan struct{}
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan services.Event, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (manager *WebSocketManager) Run(ctx context.Context) {
	defer close(manager.done)
	for {
		select {
		case <-ctx.Done():
			manager.mu.Lock()
			for id, client := range manager.clients {
				close(client.Send)
				delete(manager.clients, id)
			}
			manager.mu.Unlock()
			return

		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.ID] = client
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Debug("websocket client registered", "client_id", client.ID, "total", total)

		case client := <-manager.unregister:
			manager.remove(client)

		case event := <-manager.broadcast:
			manager.broadcastMessage(event)
		}
	}
}

// Publish implements services.EventPublisher. When the buffer is full the
// event is dropped.
func (manager *WebSocketManager) Publish(event services.Event) {
	select {
	case manager.broadcast <- event:
	default:
		logger.Warn("websocket broadcast buffer full, event dropped",
			"collection", event.Collection, "action", event.Action)
	}
}

func (manager *WebSocketManager) broadcastMessage(event services.Event) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	logger.EventLog(event.Collection, string(event.Action), event.ID, len(manager.clients))

	for clientID, client := range manager.clients {
		select {
		case client.Send <- event:
		default:
			// Slow client: drop it rather than stall the hub.
			close(client.Send)
			delete(manager.clients, clientID)
			logger.Warn("websocket client dropped, send buffer full", "client_id", clientID)
		}
	}
}

// leave hands a client back to the hub, unless the hub has already stopped.
func (manager *WebSocketManager) leave(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

func (manager *WebSocketManager) remove(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if current, ok := manager.clients[client.ID]; ok && current == client {
		close(client.Send)
		delete(manager.clients, client.ID)
		logger.Debug("websocket client unregistered", "client_id", client.ID, "total", len(manager.clients))
	}
}

func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

func (manager *WebSocketManager) IsClientConnected(clientID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	_, exists := manager.clients[clientID]
	return exists
}
