package stubapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/fringe-portal/authapi"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/users"
	"github.com/rs/zerolog/log"
)

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", "")
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required", "")
			return
		}

		account, err := s.accounts.GetByEmail(req.Email)
		if err != nil || account.Blocked || !account.CheckPassword(req.Password) {
			writeError(w, http.StatusUnauthorized, authapi.InvalidCredentialCode, authapi.InvalidCredentialCode)
			return
		}

		resp, err := s.issueTokens(account)
		if err != nil {
			log.Err(err).Str("userId", account.ID).Msg("failed to issue tokens")
			writeError(w, http.StatusInternalServerError, "Failed to issue tokens", "")
			return
		}
		if err := s.accounts.SetLastLogin(account.ID, time.Now().UTC()); err != nil {
			log.Err(err).Str("userId", account.ID).Msg("failed to record login")
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) RefreshTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
			writeError(w, http.StatusBadRequest, "Refresh token is required", "")
			return
		}

		userID, newRefreshToken, err := s.refresh.Rotate(req.RefreshToken)
		if errors.Is(err, errors.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid refresh token", "auth/invalid-refresh-token")
			return
		}
		if err != nil {
			log.Err(err).Msg("failed to rotate refresh token")
			writeError(w, http.StatusInternalServerError, "Failed to refresh token", "")
			return
		}

		account, err := s.accounts.GetByID(userID)
		if err != nil || account.Blocked {
			writeError(w, http.StatusUnauthorized, "Invalid refresh token", "auth/invalid-refresh-token")
			return
		}

		accessToken, expiresAt, err := s.tokens.CreateAccessToken(account)
		if err != nil {
			log.Err(err).Str("userId", account.ID).Msg("failed to issue access token")
			writeError(w, http.StatusInternalServerError, "Failed to refresh token", "")
			return
		}
		writeJSON(w, http.StatusOK, tokenResponse(account, accessToken, newRefreshToken, expiresAt))
	}
}

// ForgotPasswordHandler always answers 204 so callers cannot probe for accounts.
func (s *Server) ForgotPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
			writeError(w, http.StatusBadRequest, "Email is required", "")
			return
		}

		if account, err := s.accounts.GetByEmail(req.Email); err == nil {
			log.Info().Str("email", account.Email).Msg("password reset link requested")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) issueTokens(account *users.Account) (*authapi.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokens.CreateAccessToken(account)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.refresh.Create(account.ID)
	if err != nil {
		return nil, err
	}
	return tokenResponse(account, accessToken, refreshToken, expiresAt), nil
}

func tokenResponse(account *users.Account, accessToken, refreshToken string, expiresAt time.Time) *authapi.TokenResponse {
	return &authapi.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
		UserID:       account.ID,
		Email:        account.Email,
		Roles:        account.Roles,
	}
}
