package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTooManyRequests = errors.New("too many requests")
)

// Error carries the backend's {error} payload so callers can surface the
// server's message verbatim.
type Error struct {
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Duration(cfg.Every)), cfg.Burst),
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func (c *Client) do(ctx context.Context, token string, method string, path string, body any, v any) error {
	for try := 0; ; try++ {
		err := c.doOnce(ctx, token, method, path, body, v)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrTooManyRequests) {
			return err
		}
		if try >= c.cfg.MaxRetries {
			return fmt.Errorf("request to %s failed after %d retries: %w", path, c.cfg.MaxRetries, ErrTooManyRequests)
		}
	}
}

func (c *Client) doOnce(ctx context.Context, token string, method string, path string, body any, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = buf
	}

	rq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Accept", "application/json")
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		rq.Header.Set("Authorization", "Bearer "+token)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	switch {
	case rs.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case rs.StatusCode == http.StatusTooManyRequests:
		return ErrTooManyRequests
	case rs.StatusCode < 200 || rs.StatusCode >= 300:
		return apiError(rs)
	}

	if v == nil {
		return nil
	}
	if err = json.NewDecoder(rs.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// apiError extracts the backend's {error} message; if the body is not the
// expected shape the status code is all we have.
func apiError(rs *http.Response) error {
	var apiErr Error
	if err := json.NewDecoder(rs.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
		return fmt.Errorf("unexpected status code: %d", rs.StatusCode)
	}
	return &apiErr
}
