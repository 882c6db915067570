package hub

import (
	"context"
	"fmt"
	"net/http"
)

type oauthCallback struct {
	Code string `json:"code"`
}

// OAuthCallback forwards the provider's authorization code to the backend,
// which exchanges it and links the account to the authenticated user.
func (c *Client) OAuthCallback(ctx context.Context, token string, provider string, code string) (*OAuthAccount, error) {
	var account OAuthAccount
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/oauth/%s/callback", provider), oauthCallback{
		Code: code,
	}, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) OAuthDisconnect(ctx context.Context, token string, provider string) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/oauth/%s/disconnect", provider), nil, nil)
}
