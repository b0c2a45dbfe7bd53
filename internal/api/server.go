package api

import (
	"net/http"

	"gielda-aut/internal/config"
	"gielda-aut/internal/database"
	"gielda-aut/internal/storage"
	"gielda-aut/internal/websocket"
)

type Server struct {
	config  *config.Config
	store   *database.MongoStore
	storage storage.ImageStore
	wsHub   *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.MongoStore, storage storage.ImageStore, wsHub *websocket.Hub) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		storage: storage,
		wsHub:   wsHub,
	}
}

// @Summary      Health check
// @Description  Verifies that the server can reach the database.
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string "ok"
// @Failure      503  {string}  string "database unreachable"
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}
