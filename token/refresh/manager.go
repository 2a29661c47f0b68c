package refresh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jrsteele09/fringe-portal/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const DefaultTokenLength = 32

// Manager handles refresh token creation, validation, and rotation
type Manager struct {
	repo   Repo
	length int
	expiry time.Duration
}

func NewManager(repo Repo, expiry time.Duration) *Manager {
	return &Manager{
		repo:   repo,
		length: DefaultTokenLength,
		expiry: expiry,
	}
}

// Create generates a new refresh token for userID. Each user holds a single
// refresh token, so any previous one is revoked.
func (m *Manager) Create(userID string) (string, error) {
	if existing, err := m.repo.GetByUserID(userID); err == nil && existing != nil {
		if err := m.repo.Delete(existing.Token); err != nil {
			return "", fmt.Errorf("failed to delete existing refresh token: %w", err)
		}
	}

	tokenBytes := make([]byte, m.length)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	token := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(&StoredRefreshToken{
		Token:  token,
		UserID: userID,
		Iat:    NowTimeFunc(),
	}); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

// Rotate exchanges token for a new one and returns the owning user ID. The
// old token is spent whether or not it had expired.
func (m *Manager) Rotate(token string) (userID, newToken string, err error) {
	stored, err := m.repo.Get(token)
	if err != nil {
		return "", "", errors.Wrapf(errors.ErrUnauthorized, "[refresh Rotate] unknown token")
	}
	if err := m.repo.Delete(token); err != nil {
		return "", "", fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if m.IsExpired(stored) {
		return "", "", errors.Wrapf(errors.ErrUnauthorized, "[refresh Rotate] token expired")
	}

	newToken, err = m.Create(stored.UserID)
	if err != nil {
		return "", "", err
	}
	return stored.UserID, newToken, nil
}

func (m *Manager) IsExpired(rt *StoredRefreshToken) bool {
	return NowTimeFunc().Sub(rt.Iat) > m.expiry
}
