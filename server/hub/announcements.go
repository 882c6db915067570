package hub

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.do(ctx, "", http.MethodGet, "/announcements", nil, &announcements); err != nil {
		return nil, err
	}

	return announcements, nil
}

func (c *Client) GetEventAnnouncements(ctx context.Context, eventID int) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.do(ctx, "", http.MethodGet, fmt.Sprintf("/announcements/event/%d", eventID), nil, &announcements); err != nil {
		return nil, err
	}

	return announcements, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, token string, announcement AnnouncementCreate) (*Announcement, error) {
	var created Announcement
	if err := c.do(ctx, token, http.MethodPost, "/announcements", announcement, &created); err != nil {
		return nil, err
	}

	return &created, nil
}
