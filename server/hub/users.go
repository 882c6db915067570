package hub

import (
	"context"
	"net/http"
)

func (c *Client) GetMe(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, token, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) UpdateMe(ctx context.Context, token string, update UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, token, http.MethodPut, "/users/me", update, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) DeleteMe(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodDelete, "/users/me", nil, nil)
}
