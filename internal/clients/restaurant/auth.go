package restaurant

import (
	"context"
	"errors"
	"net/http"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, cred entity.Credential) (string, error) {
	const op = "login failed"

	var resp tokenResponse

	err := c.do(ctx, op, http.MethodPost, "/api/auth/login", "", cred, &resp)
	if err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", &entity.APIError{Op: op, StatusCode: http.StatusOK, Err: errors.New("empty token in response")}
	}

	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, r entity.Registration) (string, error) {
	var resp tokenResponse

	err := c.do(ctx, "registration failed", http.MethodPost, "/api/auth/register", "", r, &resp)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
