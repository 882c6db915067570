package hub

import (
	"context"
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat sends a message to the backend assistant. Conversation memory lives
// server-side, keyed by the authenticated user.
func (c *Client) Chat(ctx context.Context, token string, message string) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.do(ctx, token, http.MethodPost, "/chat", chatRequest{
		Message: message,
	}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
