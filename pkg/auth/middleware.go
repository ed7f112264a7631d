package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/warehouse/pkg/httpx"
	"github.com/ghuser/warehouse/pkg/logger"
)

const sessionName = "warehouse_session"
const sessionAddressKey = "address"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the caller address, and injects it into
// the request context. Returns 401 Unauthorized if the session is missing,
// invalid, or lacks an address.
//
// After this middleware, handlers can safely call auth.CallerFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			address, ok := session.Values[sessionAddressKey].(string)
			if !ok || address == "" {
				log.WarnContext(r.Context(), "session missing address")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithCaller(r.Context(), address)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
