package middlewareprovider

import (
	"assetconsole/models"
	"assetconsole/providers"
	"assetconsole/serviceprovider/auth"
	"assetconsole/utils"
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const (
	userContextKey contextKey = "user_key"
	roleContextKey contextKey = "role_key"
)

type DefaultAuthMiddleware struct {
	jwt auth.JWTService
}

func NewAuthMiddlewareService(jwt auth.JWTService) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		jwt: jwt,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "Authentication required")
				return
			}

			userID, role, err := a.jwt.ParseJWT(accessToken)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, userID)
			ctx = context.WithValue(ctx, roleContextKey, models.Role(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, err := a.GetUserAndRoleFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "Authentication required")
				return
			}
			if !allowed[role] {
				utils.RespondError(w, http.StatusForbidden, nil, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserAndRoleFromContext(r *http.Request) (string, models.Role, error) {
	userID, ok := r.Context().Value(userContextKey).(string)
	if !ok {
		return "", "", errors.New("user ID not found in context")
	}
	role, ok := r.Context().Value(roleContextKey).(models.Role)
	if !ok {
		return "", "", errors.New("role not found in context")
	}
	return userID, role, nil
}
