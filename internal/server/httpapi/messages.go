package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/splitchat/splitchat/internal/models"
	"github.com/splitchat/splitchat/internal/server/identity"
)

// handleListMessages returns every pointer between the caller and the other
// user, ascending by creation time. The caller's side of the pair comes from
// the verified credential, never from a request parameter.
func (r *Router) handleListMessages(w http.ResponseWriter, req *http.Request) {
	ident, ok := identity.FromContext(req.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	otherUserID := chi.URLParam(req, "otherUserID")

	pointers, err := r.messages.ListConversation(req.Context(), ident.UserID, otherUserID)
	if err != nil {
		r.logger.Error(req.Context(), "listing conversation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if pointers == nil {
		pointers = []*models.MessagePointer{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": pointers})
}

type createMessageRequest struct {
	ContainerID string `json:"containerId"`
	DocumentID  string `json:"documentId"`
}

// handleCreateMessage appends a pointer for a content record the caller has
// already written to the store. On success the recipient is notified on a
// detached goroutine; its outcome does not affect the response.
func (r *Router) handleCreateMessage(w http.ResponseWriter, req *http.Request) {
	ident, ok := identity.FromContext(req.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	otherUserID := chi.URLParam(req, "otherUserID")

	var body createMessageRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if body.ContainerID == "" || body.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "containerId and documentId are required")
		return
	}

	pointer := &models.MessagePointer{
		CreatedAt:   time.Now().UTC(),
		FromUserID:  ident.UserID,
		ToUserID:    otherUserID,
		ContainerID: body.ContainerID,
		DocumentID:  body.DocumentID,
	}
	if err := r.messages.Append(req.Context(), pointer); err != nil {
		r.logger.Error(req.Context(), "pointer append failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	r.dispatcher.Dispatch(ident.Credential, otherUserID)

	w.WriteHeader(http.StatusCreated)
}
