package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/splitchat/splitchat/internal/common"
	"github.com/splitchat/splitchat/internal/server/identity"
)

// authMiddleware validates the bearer credential with the identity gateway
// and attaches the verified identity to the request context. Any
// authentication failure terminates the request with 401 before a single
// index or content-store operation runs.
func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.NewString()

		credential := bearerCredential(req)
		ident, err := r.gateway.Authenticate(req.Context(), credential)
		if err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				r.logger.Warn(req.Context(), "credential rejected", "request_id", requestID)
			} else {
				r.logger.Error(req.Context(), "identity provider unreachable",
					"request_id", requestID, "error", err.Error())
			}
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		r.logger.Debug(req.Context(), "authenticated",
			"request_id", requestID, "user_id", ident.UserID)

		ctx := identity.WithIdentity(req.Context(), ident)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// bearerCredential extracts the token from the Authorization header. An
// empty result means no usable credential was supplied.
func bearerCredential(req *http.Request) string {
	authz := req.Header.Get(common.AuthorizationHeaderName)
	if authz == "" {
		return ""
	}
	if strings.HasPrefix(authz, common.BearerPrefix) {
		return strings.TrimPrefix(authz, common.BearerPrefix)
	}
	return ""
}
