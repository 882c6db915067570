package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends a file to the backend's media endpoint and returns the public
// URL of the stored file.
func (c *Client) Upload(ctx context.Context, token string, filename string, file io.Reader) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/upload", buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Content-Type", mw.FormDataContentType())
	rq.Header.Set("Accept", "application/json")
	rq.Header.Set("Authorization", "Bearer "+token)

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	switch {
	case rs.StatusCode == http.StatusUnauthorized:
		return "", ErrUnauthorized
	case rs.StatusCode < 200 || rs.StatusCode >= 300:
		return "", apiError(rs)
	}

	var upload uploadResponse
	if err = json.NewDecoder(rs.Body).Decode(&upload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return upload.URL, nil
}
