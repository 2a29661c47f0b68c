package refresh_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/token/refresh"
	refreshrepofake "github.com/jrsteele09/fringe-portal/token/refresh/repofake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Rotate(t *testing.T) {
	m := refresh.NewManager(refreshrepofake.NewFakeRefreshTokenRepo(), time.Hour)

	first, err := m.Create("u-1")
	require.NoError(t, err)
	assert.Len(t, first, refresh.DefaultTokenLength*2)

	userID, second, err := m.Rotate(first)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.NotEqual(t, first, second)

	// Spent tokens cannot be reused.
	_, _, err = m.Rotate(first)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestManager_SingleTokenPerUser(t *testing.T) {
	m := refresh.NewManager(refreshrepofake.NewFakeRefreshTokenRepo(), time.Hour)

	first, err := m.Create("u-1")
	require.NoError(t, err)
	_, err = m.Create("u-1")
	require.NoError(t, err)

	_, _, err = m.Rotate(first)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestManager_Expired(t *testing.T) {
	defer func() { refresh.NowTimeFunc = time.Now }()
	m := refresh.NewManager(refreshrepofake.NewFakeRefreshTokenRepo(), time.Hour)

	refresh.NowTimeFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Create("u-1")
	require.NoError(t, err)

	refresh.NowTimeFunc = time.Now
	_, _, err = m.Rotate(token)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}
