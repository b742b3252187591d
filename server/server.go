package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"artra/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	hub      *Hub
}

func NewServer(addr string, upgrader websocket.Upgrader, hub *Hub) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		hub:      hub,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	c := &client{
		hub:  s.hub,
		conn: conn,
		send: make(chan model.Msg, sendQueue),
	}
	select {
	case s.hub.register <- c:
	case <-s.hub.stop:
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("monitor listening")
	return http.ListenAndServe(s.addr, s.Handler())
}
