// Package authapi is the client for the external authentication service.
package authapi

import (
	"context"
	"net/http"

	"github.com/jrsteele09/fringe-portal/authctx"
	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/pkg/errors"
)

const (
	PathLogin          = "/auth/login"
	PathRefreshToken   = "/auth/refresh-token"
	PathForgotPassword = "/auth/forgot-password"
)

type Client struct {
	api *apiclient.Client
}

var _ authctx.Authenticator = (*Client)(nil)

func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.api.Do(ctx, http.MethodPost, PathLogin, req, &resp); err != nil {
		return nil, errors.Wrap(err, "authapi login")
	}
	return &resp, nil
}

func (c *Client) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.api.Do(ctx, http.MethodPost, PathRefreshToken, req, &resp); err != nil {
		return nil, errors.Wrap(err, "authapi refresh token")
	}
	return &resp, nil
}

// ForgotPassword asks the service to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	if err := c.api.Do(ctx, http.MethodPost, PathForgotPassword, req, nil); err != nil {
		return errors.Wrap(err, "authapi forgot password")
	}
	return nil
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (*session.Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return resp.Session(), nil
}

func (c *Client) Renew(ctx context.Context, refreshToken string) (*session.Session, error) {
	resp, err := c.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	return resp.Session(), nil
}
