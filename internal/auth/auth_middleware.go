package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// JWTAccessTokenMiddleware validates the bearer token, confirms the subject
// still exists, and places the user id into the request context.
func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				respondError(w, http.StatusUnauthorized, "Invalid token format")
				return
			}

			identity, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			_, err = s.repo.GetUserByID(identity.UserID)
			if err != nil {
				if errors.Is(err, ErrUserNotFound) {
					respondError(w, http.StatusUnauthorized, ErrUserNotFound.Error())
					return
				}
				respondError(w, http.StatusInternalServerError, ErrInternalError.Error())
				return
			}

			ctx := context.WithValue(r.Context(), "userID", identity.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
