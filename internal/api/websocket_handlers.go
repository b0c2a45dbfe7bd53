package api

import (
	"log"
	"net/http"

	"gielda-aut/internal/websocket"
)

// ServeWsHandler podpina klienta pod publiczny kanał zdarzeń katalogu.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
