package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"artra/deque"
	"artra/model"
)

const (
	writeWait = 10 * time.Second
	sendQueue = 64
)

// Hub maintains the set of active clients and broadcasts export events to
// them. Late clients are sent the recent history first.
type Hub struct {
	clients  map[*client]bool
	history  deque.Deque
	register chan *client
	// client left
	unregister chan *client
	// client asked for something
	requests chan request
	events   chan model.ExportEvent
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan model.Msg
}

type request struct {
	c   *client
	msg model.Msg
}

func NewHub(history int) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		history:    deque.NewListDeque(history),
		register:   make(chan *client),
		unregister: make(chan *client),
		requests:   make(chan request),
		events:     make(chan model.ExportEvent),
		stop:       make(chan struct{}),
	}
}

// Notify hands an export event to the hub. It returns once the hub has
// taken it, or immediately after Stop.
func (h *Hub) Notify(ev model.ExportEvent) {
	select {
	case h.events <- ev:
	case <-h.stop:
	}
}

// Stop ends Run and disconnects every client. Further calls do nothing.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.replay(c)
			log.WithField("clients", len(h.clients)).Info("monitor client connected")
		case c := <-h.unregister:
			h.drop(c)
		case req := <-h.requests:
			h.handleRequest(req)
		case ev := <-h.events:
			h.history.AddLast(ev)
			msg := exportMsg(ev)
			for c := range h.clients {
				h.deliver(c, msg)
			}
		case <-h.stop:
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

func (h *Hub) handleRequest(req request) {
	if _, ok := h.clients[req.c]; !ok {
		return
	}
	switch req.msg.Type {
	case "history":
		h.replay(req.c)
	default:
		log.WithField("type", req.msg.Type).Warn("no such type")
		h.deliver(req.c, model.Msg{Type: "error", Content: "no such type"})
	}
}

func (h *Hub) replay(c *client) {
	h.history.Traverse(func(i int, ev model.ExportEvent) {
		h.deliver(c, exportMsg(ev))
	})
}

// deliver queues msg for c, dropping clients that cannot keep up.
func (h *Hub) deliver(c *client, msg model.Msg) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- msg:
	default:
		h.drop(c)
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func exportMsg(ev model.ExportEvent) model.Msg {
	data, err := json.Marshal(&ev)
	if err != nil {
		log.Println("err: ", err)
	}
	return model.Msg{Type: "export", Content: string(data)}
}

// readPump forwards client requests to the hub until the connection fails.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stop:
		}
		c.conn.Close()
	}()
	for {
		var msg model.Msg
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("err: ", err)
			}
			return
		}
		select {
		case c.hub.requests <- request{c: c, msg: msg}:
		case <-c.hub.stop:
			return
		}
	}
}

// writePump writes queued messages until the hub closes send.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(&msg); err != nil {
			log.Println("err: ", err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
