package stubapi

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/jrsteele09/fringe-portal/token/jwt"
	"github.com/jrsteele09/fringe-portal/users"
)

type contextKey string

const claimsKey contextKey = "claims"

// requireToken rejects requests without a valid bearer access token.
func (s *Server) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		claims, err := s.tokens.Parse(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", "")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// requireAdmin is requireToken plus the admin role.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireToken(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := r.Context().Value(claimsKey).(*jwt.Claims)
		if claims == nil || !slices.Contains(claims.Roles, users.RoleAdmin) {
			writeError(w, http.StatusForbidden, "Forbidden", "")
			return
		}
		next(w, r)
	})
}
