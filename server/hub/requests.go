package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrRoleRequired is raised before any network call when a join request is
// submitted without a role; its message is shown to the user as-is.
var ErrRoleRequired = errors.New("Please select a role to join")

type joinRequest struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type handleRequest struct {
	Status        RequestStatus `json:"status"`
	AdminResponse string        `json:"admin_response"`
}

// JoinClub submits a join request for the given club. The returned request is
// pending; callers append it to their local request list instead of
// refetching.
func (c *Client) JoinClub(ctx context.Context, token string, clubID int, role string, message string) (*JoinRequest, error) {
	if role == "" {
		return nil, ErrRoleRequired
	}

	var req JoinRequest
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/clubs/%d/join", clubID), joinRequest{
		Role:    role,
		Message: message,
	}, &req); err != nil {
		return nil, err
	}

	return &req, nil
}

func (c *Client) GetClubRequests(ctx context.Context, token string, clubID int) ([]JoinRequest, error) {
	var requests []JoinRequest
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/clubs/%d/requests", clubID), nil, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

func (c *Client) GetRequest(ctx context.Context, token string, requestID int) (*JoinRequest, error) {
	var req JoinRequest
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/clubs/requests/%d", requestID), nil, &req); err != nil {
		return nil, err
	}

	return &req, nil
}

// GetMyRequests returns all of the authenticated user's join requests across
// all clubs, regardless of status.
func (c *Client) GetMyRequests(ctx context.Context, token string) ([]JoinRequest, error) {
	var requests []JoinRequest
	if err := c.do(ctx, token, http.MethodGet, "/clubs/my-requests", nil, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// HandleRequest resolves a pending join request. The transition is terminal;
// only accepted and rejected are valid decisions.
func (c *Client) HandleRequest(ctx context.Context, token string, requestID int, status RequestStatus, adminResponse string) (*JoinRequest, error) {
	if status != RequestStatusAccepted && status != RequestStatusRejected {
		return nil, fmt.Errorf("invalid request decision: %s", status)
	}

	var req JoinRequest
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/clubs/requests/%d", requestID), handleRequest{
		Status:        status,
		AdminResponse: adminResponse,
	}, &req); err != nil {
		return nil, err
	}

	return &req, nil
}
