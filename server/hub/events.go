package hub

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, "", http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID int) (*Event, error) {
	var event Event
	if err := c.do(ctx, "", http.MethodGet, fmt.Sprintf("/events/%d", eventID), nil, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, event EventCreate) (*Event, error) {
	var created Event
	if err := c.do(ctx, token, http.MethodPost, "/events", event, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token string, eventID int, event EventCreate) (*Event, error) {
	var updated Event
	if err := c.do(ctx, token, http.MethodPut, fmt.Sprintf("/events/%d", eventID), event, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
