package membership

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clubhub-app/clubhub/internal/tsync"
	"github.com/clubhub-app/clubhub/server/hub"
)

type NotificationType string

const (
	// NotificationAdminRequest is a pending join request awaiting the club
	// admin's decision.
	NotificationAdminRequest NotificationType = "admin_request"
	// NotificationUserUpdate is a resolved join request of the user's own.
	// There is no read tracking; it reappears on every dashboard visit until
	// the request list itself changes.
	NotificationUserUpdate NotificationType = "user_update"
)

type Notification struct {
	Type     NotificationType
	ClubID   int
	ClubName string
	Request  hub.JoinRequest
}

// RequestSource is the slice of the hub API the aggregator needs.
type RequestSource interface {
	GetManagedClubs(ctx context.Context, token string) ([]hub.Club, error)
	GetClubRequests(ctx context.Context, token string, clubID int) ([]hub.JoinRequest, error)
	GetMyRequests(ctx context.Context, token string) ([]hub.JoinRequest, error)
}

const fetchConcurrency = 4

// Aggregate builds the notification list for the dashboard.
//
// Admins get the pending join requests of every club they manage, fetched
// with a bounded fan-out. A club whose fetch fails is logged and contributes
// zero notifications; it never blanks out the rest of the list. Everyone else
// gets their own already-resolved requests. No ordering is guaranteed across
// clubs.
func Aggregate(ctx context.Context, source RequestSource, user hub.User, token string) ([]Notification, error) {
	if !user.IsAdmin {
		return userNotifications(ctx, source, token)
	}

	clubs, err := source.GetManagedClubs(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch managed clubs: %w", err)
	}

	var (
		mu            sync.Mutex
		notifications []Notification
	)

	eg, ctx := tsync.ErrorGroupWithContext(ctx)
	eg.SetLimit(fetchConcurrency)
	for _, club := range clubs {
		eg.Go(func() error {
			requests, err := source.GetClubRequests(ctx, token, club.ID)
			if err != nil {
				return fmt.Errorf("failed to fetch requests for club %q: %w", club.Name, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, req := range requests {
				if req.Status != hub.RequestStatusPending {
					continue
				}
				notifications = append(notifications, Notification{
					Type:     NotificationAdminRequest,
					ClubID:   club.ID,
					ClubName: club.Name,
					Request:  req,
				})
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "Failed to fetch join requests for some clubs", slog.Any("err", err))
	}

	return notifications, nil
}

func userNotifications(ctx context.Context, source RequestSource, token string) ([]Notification, error) {
	requests, err := source.GetMyRequests(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch own requests: %w", err)
	}

	var notifications []Notification
	for _, req := range requests {
		if req.Status == hub.RequestStatusPending {
			continue
		}
		notifications = append(notifications, Notification{
			Type:     NotificationUserUpdate,
			ClubID:   req.ClubID,
			ClubName: req.ClubName,
			Request:  req,
		})
	}

	return notifications, nil
}
