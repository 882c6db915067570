package web

import (
	"fmt"
	"time"

	"github.com/clubhub-app/clubhub/server/database"
	"github.com/clubhub-app/clubhub/server/hub"
	"github.com/clubhub-app/clubhub/server/membership"
)

// SessionUser is the logged-in user as rendered in the page chrome. Nil
// means guest.
type SessionUser struct {
	ID      int
	Name    string
	IsAdmin bool
}

func sessionUser(session database.Session) *SessionUser {
	if !session.LoggedIn() {
		return nil
	}
	return &SessionUser{
		ID:      session.UserID,
		Name:    session.UserName,
		IsAdmin: session.IsAdmin,
	}
}

// hubUser converts the cached session fields into the user record shape the
// membership package consumes.
func hubUser(session database.Session) hub.User {
	return hub.User{
		ID:      session.UserID,
		Name:    session.UserName,
		IsAdmin: session.IsAdmin,
	}
}

func newClub(club hub.Club) Club {
	return Club{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		LogoURL:     club.LogoURL,
		OwnerID:     club.OwnerID,
		Roles:       club.Roles,
		MemberCount: len(club.Members),
		URL:         fmt.Sprintf("/clubs/%d", club.ID),
		CreatedAt:   club.CreatedAt.Time(),
	}
}

type Club struct {
	ID          int
	Name        string
	Description string
	Category    string
	LogoURL     string
	OwnerID     int
	Roles       []string
	MemberCount int
	URL         string
	CreatedAt   time.Time
}

func newEvent(event hub.Event) Event {
	return Event{
		ID:          event.ID,
		ClubID:      event.ClubID,
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartDate.Time(),
		EndDate:     event.EndDate.Time(),
		Location:    event.Location,
		Fee:         event.Fee,
		Status:      string(event.Status),
		PosterURL:   event.PosterURL,
		Link:        event.Link,
		URL:         fmt.Sprintf("/events/%d", event.ID),
		QRCodeURL:   fmt.Sprintf("/events/%d/qr", event.ID),
	}
}

type Event struct {
	ID          int
	ClubID      int
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	Fee         float64
	Status      string
	PosterURL   string
	Link        string
	URL         string
	QRCodeURL   string
}

func newRequest(req hub.JoinRequest) Request {
	return Request{
		ID:            req.ID,
		ClubID:        req.ClubID,
		ClubName:      req.ClubName,
		UserID:        req.UserID,
		UserName:      req.UserName,
		Role:          req.Role,
		Message:       req.Message,
		Status:        string(req.Status),
		AdminResponse: req.AdminResponse,
		URL:           fmt.Sprintf("/requests/%d", req.ID),
		CreatedAt:     req.CreatedAt.Time(),
	}
}

type Request struct {
	ID            int
	ClubID        int
	ClubName      string
	UserID        int
	UserName      string
	Role          string
	Message       string
	Status        string
	AdminResponse string
	URL           string
	CreatedAt     time.Time
}

func newNotification(notification membership.Notification) Notification {
	n := Notification{
		Type:     string(notification.Type),
		ClubName: notification.ClubName,
		ClubURL:  fmt.Sprintf("/clubs/%d", notification.ClubID),
		Request:  newRequest(notification.Request),
	}
	switch notification.Type {
	case membership.NotificationAdminRequest:
		n.Title = fmt.Sprintf("%s wants to join %s", notification.Request.UserName, notification.ClubName)
		n.URL = n.Request.URL
	case membership.NotificationUserUpdate:
		n.Title = fmt.Sprintf("Your request to join %s was %s", notification.ClubName, notification.Request.Status)
		n.URL = n.ClubURL
	}
	return n
}

type Notification struct {
	Type     string
	Title    string
	ClubName string
	ClubURL  string
	URL      string
	Request  Request
}
