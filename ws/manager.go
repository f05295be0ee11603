package ws

import (
	"sync"

	"hostreel_backend/internal/logger"
)

// Manager tracks live websocket connections per user. A user may hold
// several connections (multiple tabs, devices); pushes fan out to all of
// them.
type Manager struct {
	clients    map[string]map[*Client]struct{} // userID -> connections
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]struct{})
			}
			m.clients[client.UserID][client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					close(client.Send)
					delete(conns, client)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
				}
			}
			m.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// PushToUser sends raw bytes to every live connection of a user. Slow
// consumers are dropped rather than blocking the caller.
func (m *Manager) PushToUser(userID string, data []byte) {
	m.mu.RLock()
	conns := make([]*Client, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		conns = append(conns, client)
	}
	m.mu.RUnlock()

	for _, client := range conns {
		select {
		case client.Send <- data:
		default:
			go func(c *Client) { m.unregister <- c }(client)
		}
	}
}

// ConnectedUsers reports the number of users with at least one live
// connection.
func (m *Manager) ConnectedUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
