// Package ws pushes deal mutation events to connected UI clients so open
// table and board views stay current without polling.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/store"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// DealEvent is the wire shape of a pushed deal mutation
type DealEvent struct {
	Type   string       `json:"type"`
	DealID string       `json:"dealId,omitempty"`
	Deal   *domain.Deal `json:"deal,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans deal events out to connected clients. Sends are non-blocking;
// a client whose buffer is full is disconnected.
type Hub struct {
	clients   map[*client]bool
	clientsMu sync.RWMutex
	logger    *zap.Logger
}

// NewHub creates a hub and subscribes it to the store's deal events
func NewHub(st *store.Store, logger *zap.Logger) *Hub {
	h := &Hub{
		clients: make(map[*client]bool),
		logger:  logger,
	}
	st.Subscribe(func(e store.Event) {
		if event, ok := translate(e); ok {
			h.broadcast(event)
		}
	})
	return h
}

func translate(e store.Event) (DealEvent, bool) {
	switch e.Kind {
	case store.EventDealsReplaced:
		return DealEvent{Type: "deals_replaced"}, true
	case store.EventDealAdded:
		return DealEvent{Type: "deal_added", DealID: e.DealID, Deal: e.Deal}, true
	case store.EventDealUpdated:
		return DealEvent{Type: "deal_updated", DealID: e.DealID, Deal: e.Deal}, true
	case store.EventDealDeleted:
		return DealEvent{Type: "deal_deleted", DealID: e.DealID}, true
	}
	return DealEvent{}, false
}

func (h *Hub) broadcast(event DealEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal deal event", zap.Error(err))
		return
	}

	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			// Slow client, drop it
			go h.remove(c)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.clientsMu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.clientsMu.Unlock()
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades the request and streams deal events
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.clientsMu.Lock()
	h.clients[cl] = true
	h.clientsMu.Unlock()

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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

// readPump discards inbound frames; the stream is push-only. It exists to
// process pongs and detect disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
