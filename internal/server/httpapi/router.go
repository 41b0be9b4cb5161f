// Package httpapi exposes the message-index HTTP API: listing a conversation
// and appending message pointers, behind bearer-credential authentication.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/splitchat/splitchat/internal/logging"
	"github.com/splitchat/splitchat/internal/server/identity"
	"github.com/splitchat/splitchat/internal/server/notify"
	"github.com/splitchat/splitchat/internal/server/services"
)

// Router holds the handlers' dependencies.
type Router struct {
	gateway    *identity.Gateway
	messages   *services.MessageService
	dispatcher *notify.Dispatcher
	logger     logging.Logger
}

// NewRouter assembles the chi mux. The chat routes require a valid bearer
// credential; health does not.
func NewRouter(gw *identity.Gateway, ms *services.MessageService, d *notify.Dispatcher, corsOrigin string, logger logging.Logger) http.Handler {
	r := &Router{
		gateway:    gw,
		messages:   ms,
		dispatcher: d,
		logger:     logger.With("module", "httpapi"),
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	mux.Get("/health", r.handleHealth)

	mux.Group(func(pr chi.Router) {
		pr.Use(r.authMiddleware)
		pr.Get("/chat/{otherUserID}/messages", r.handleListMessages)
		pr.Post("/chat/{otherUserID}/messages", r.handleCreateMessage)
	})

	return mux
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
