package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sheepshead/backend/internal/directory"
	"github.com/sheepshead/backend/internal/hub"
	"github.com/sheepshead/backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, dir directory.Directory, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/rooms", CreateRoom(dir, log))
	r.Get("/healthz", Healthz)
	r.Get("/games/{roomID}", ws.Handler(h, dir, log))
	return r
}
