package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/slots"
)

// TableHub fans slot change events out to every connected board (TV, waiter
// tablet, admin, storefront status panel). It also keeps an in-memory mirror
// of the slot board so a client joining mid-session gets a full snapshot
// before the event stream.
type TableHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan slots.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mirror     *slots.Store
}

// snapshotMsg is the first frame sent to a new client: the merged board.
type snapshotMsg struct {
	Type   string             `json:"type"`
	Tables []entity.TableSlot `json:"tables"`
}

func NewTableHub() *TableHub {
	return &TableHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan slots.Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		mirror:     slots.NewStore(),
	}
}

// Bootstrap loads the persisted rows into the mirror before the hub starts.
func (h *TableHub) Bootstrap(rows []entity.TableSlot) {
	h.mirror.Load(rows)
}

// Publish hands a change event to the hub loop. Safe from any goroutine.
func (h *TableHub) Publish(evt slots.Event) {
	h.broadcast <- evt
}

// Run owns all hub state; the mirror is only touched from this loop.
func (h *TableHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			if err := conn.WriteJSON(snapshotMsg{Type: "snapshot", Tables: h.mirror.Tables()}); err != nil {
				log.Printf("ws snapshot error: %v", err)
				conn.Close()
				delete(h.clients, conn)
			}

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case evt := <-h.broadcast:
			h.mirror.Apply(evt)
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/tables (public) and /ws/board (token-authenticated).
func (h *TableHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain discards inbound frames; boards only listen. The read loop exists to
// notice the close handshake.
func (h *TableHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
