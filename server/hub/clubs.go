package hub

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetClubs(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, "", http.MethodGet, "/clubs", nil, &clubs); err != nil {
		return nil, err
	}

	return clubs, nil
}

func (c *Client) GetClub(ctx context.Context, clubID int) (*Club, error) {
	var club Club
	if err := c.do(ctx, "", http.MethodGet, fmt.Sprintf("/clubs/%d", clubID), nil, &club); err != nil {
		return nil, err
	}

	return &club, nil
}

// GetManagedClubs returns the clubs owned by the authenticated user.
func (c *Client) GetManagedClubs(ctx context.Context, token string) ([]Club, error) {
	var clubs []Club
	if err := c.do(ctx, token, http.MethodGet, "/clubs/managed", nil, &clubs); err != nil {
		return nil, err
	}

	return clubs, nil
}

func (c *Client) CreateClub(ctx context.Context, token string, club ClubCreate) (*Club, error) {
	var created Club
	if err := c.do(ctx, token, http.MethodPost, "/clubs", club, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateClub(ctx context.Context, token string, clubID int, club ClubCreate) (*Club, error) {
	var updated Club
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/clubs/%d", clubID), club, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteClub(ctx context.Context, token string, clubID int) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/clubs/%d", clubID), nil, nil)
}
