package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/campusconnect-dev/campusconnect/internal/types"
)

var (
	eventClients   = make(map[string]map[*websocket.Conn]bool)
	eventClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastOccupancy pushes the current registration count for an event to
// every connected watcher of that event.
func BroadcastOccupancy(eventID string, occupancy int) {
	eventClientsMu.RLock()
	clients, exists := eventClients[eventID]
	if !exists || len(clients) == 0 {
		eventClientsMu.RUnlock()
		return
	}

	// Copy the set so the lock is not held while writing to sockets.
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	eventClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Warn().Err(err).Msg("failed to set write deadline for broadcast")
			continue
		}

		err := conn.WriteJSON(map[string]interface{}{
			"type":      "occupancy",
			"event_id":  eventID,
			"occupancy": occupancy,
		})

		if err != nil {
			log.Warn().Err(err).Str("event_id", eventID).Msg("failed to broadcast occupancy")
			eventClientsMu.Lock()
			if clients, exists := eventClients[eventID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(eventClients, eventID)
				}
			}
			eventClientsMu.Unlock()
			conn.Close()
		}
	}
}

// WebSocket subscribes the caller to live occupancy updates for one event.
func WebSocket(c *gin.Context) {
	eventID := c.Param("event_id")

	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Warn().Err(err).Msg("failed to set initial read deadline")
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	eventClientsMu.Lock()
	if eventClients[eventID] == nil {
		eventClients[eventID] = make(map[*websocket.Conn]bool)
	}
	eventClients[eventID][conn] = true
	eventClientsMu.Unlock()

	// Closed on disconnect so the ping goroutine exits rather than parking
	// on a stopped ticker forever.
	done := make(chan struct{})

	defer func() {
		close(done)

		eventClientsMu.Lock()

		if clients, exists := eventClients[eventID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(eventClients, eventID)
			}
		}

		eventClientsMu.Unlock()
		conn.Close()
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":     "connected",
		"event_id": eventID,
	})

	if err != nil {
		log.Warn().Err(err).Msg("failed to send welcome message")
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("event_id", eventID).Msg("websocket error")
			}
			break
		}
	}
}
