package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadEvent is pushed to every connected client when the source
// collections are reloaded.
type reloadEvent struct {
	Event string `json:"event"`
	Pages int    `json:"pages"`
}

// notifier tracks websocket subscribers interested in reload events.
type notifier struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newNotifier() *notifier {
	return &notifier{conns: make(map[*websocket.Conn]bool)}
}

func (n *notifier) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	n.mu.Lock()
	n.conns[conn] = true
	n.mu.Unlock()

	// Drain reads until the client goes away; the channel is push-only.
	go func() {
		defer n.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("server: websocket read: %v", err)
				}
				return
			}
		}
	}()
}

func (n *notifier) drop(conn *websocket.Conn) {
	n.mu.Lock()
	delete(n.conns, conn)
	n.mu.Unlock()
	conn.Close()
}

// broadcast sends the event to every subscriber, dropping dead connections.
func (n *notifier) broadcast(ev reloadEvent) {
	n.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(n.conns))
	for c := range n.conns {
		conns = append(conns, c)
	}
	n.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			n.drop(c)
		}
	}
}

func (n *notifier) closeAll() {
	n.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(n.conns))
	for c := range n.conns {
		conns = append(conns, c)
	}
	n.conns = make(map[*websocket.Conn]bool)
	n.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}
