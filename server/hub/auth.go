package hub

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email string, password string) (*LoginResponse, error) {
	var login LoginResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &login); err != nil {
		return nil, err
	}

	return &login, nil
}

func (c *Client) Signup(ctx context.Context, data SignupData) (*User, error) {
	var user User
	if err := c.do(ctx, "", http.MethodPost, "/auth/signup", data, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
