package middlewares

import (
	"context"
	"net/http"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/exceptions"
	"registrar-service/internal/pkg/utils"
	"strings"
)

// Authenticate resolves the bearer token to a redis session and stores the
// raw session data in the request context for the handlers downstream.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles allows the request through only when the session role is one
// of the given roles. It must be mounted after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			if !ok || sessionData == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
				return
			}

			session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}
