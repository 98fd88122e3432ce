package middleware

import (
	"net/http"
	"strings"

	"storefront/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is where the signed session token lives.
const SessionCookieName = "at_token"

// AuthStatus is the outcome of resolving a request's session.
type AuthStatus int

const (
	Unauthenticated AuthStatus = iota // no usable token
	Unauthorized                      // token present but invalid or expired
	Authorized
)

// AuthResult carries the decoded claims when Status == Authorized.
type AuthResult struct {
	Status AuthStatus
	Claims *utils.SessionClaims
}

// Authorize extracts the session token (cookie preferred over the
// Authorization header) and verifies it.
func Authorize(r *http.Request, secret string) AuthResult {
	var token string

	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if token == "" {
		return AuthResult{Status: Unauthenticated}
	}

	claims, err := utils.ParseToken(token, secret)
	if err != nil {
		return AuthResult{Status: Unauthorized}
	}

	return AuthResult{Status: Authorized, Claims: claims}
}

// Protect requires a valid session token and puts the claims into context.
func Protect(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := Authorize(r, jwtSecret)

			switch result.Status {
			case Unauthenticated:
				utils.ResponseUnauthorized(w, "Not authorized, no token")
				return
			case Unauthorized:
				logger.Warn("Invalid or expired session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			userID, err := utils.ParseUUID(result.Claims.UserID)
			if err != nil {
				logger.Warn("Session token carries malformed user ID",
					zap.String("user_id", result.Claims.UserID))
				utils.ResponseUnauthorized(w, "Not authorized, token failed")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, result.Claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly requires the authenticated session to carry the admin role.
// Must run after Protect.
func AdminOnly(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Not authorized as an admin")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
