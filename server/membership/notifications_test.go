package membership

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/server/hub"
)

type fakeSource struct {
	mu sync.Mutex

	managedClubs []hub.Club
	clubRequests map[int][]hub.JoinRequest
	clubErrors   map[int]error
	myRequests   []hub.JoinRequest

	clubFetches []int
}

func (s *fakeSource) GetManagedClubs(_ context.Context, _ string) ([]hub.Club, error) {
	return s.managedClubs, nil
}

func (s *fakeSource) GetClubRequests(_ context.Context, _ string, clubID int) ([]hub.JoinRequest, error) {
	s.mu.Lock()
	s.clubFetches = append(s.clubFetches, clubID)
	s.mu.Unlock()

	if err := s.clubErrors[clubID]; err != nil {
		return nil, err
	}
	return s.clubRequests[clubID], nil
}

func (s *fakeSource) GetMyRequests(_ context.Context, _ string) ([]hub.JoinRequest, error) {
	return s.myRequests, nil
}

func TestAggregateAdmin(t *testing.T) {
	source := &fakeSource{
		managedClubs: []hub.Club{
			{ID: 1, Name: "Chess Club"},
			{ID: 2, Name: "Robotics"},
		},
		clubRequests: map[int][]hub.JoinRequest{
			1: {
				{ID: 10, ClubID: 1, UserID: 30, Status: hub.RequestStatusPending},
				{ID: 11, ClubID: 1, UserID: 31, Status: hub.RequestStatusAccepted},
			},
			2: {
				{ID: 12, ClubID: 2, UserID: 32, Status: hub.RequestStatusPending},
			},
		},
	}

	notifications, err := Aggregate(t.Context(), source, hub.User{ID: 1, IsAdmin: true}, "token")
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	for _, notification := range notifications {
		require.Equal(t, NotificationAdminRequest, notification.Type)
		require.Equal(t, hub.RequestStatusPending, notification.Request.Status)
	}
	require.ElementsMatch(t, []int{1, 2}, source.clubFetches)
}

func TestAggregateAdminPartialFailure(t *testing.T) {
	// One club failing must not blank out the notifications of the others.
	source := &fakeSource{
		managedClubs: []hub.Club{
			{ID: 1, Name: "Chess Club"},
			{ID: 2, Name: "Robotics"},
			{ID: 3, Name: "Debate"},
		},
		clubRequests: map[int][]hub.JoinRequest{
			1: {{ID: 10, ClubID: 1, UserID: 30, Status: hub.RequestStatusPending}},
			3: {{ID: 13, ClubID: 3, UserID: 33, Status: hub.RequestStatusPending}},
		},
		clubErrors: map[int]error{
			2: errors.New("backend unavailable"),
		},
	}

	notifications, err := Aggregate(t.Context(), source, hub.User{ID: 1, IsAdmin: true}, "token")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.ElementsMatch(t, []int{1, 2, 3}, source.clubFetches)
}

func TestAggregateAdminNoClubs(t *testing.T) {
	source := &fakeSource{}

	notifications, err := Aggregate(t.Context(), source, hub.User{ID: 1, IsAdmin: true}, "token")
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestAggregateUser(t *testing.T) {
	source := &fakeSource{
		myRequests: []hub.JoinRequest{
			{ID: 10, ClubID: 1, ClubName: "Chess Club", Status: hub.RequestStatusAccepted},
			{ID: 11, ClubID: 2, ClubName: "Robotics", Status: hub.RequestStatusPending},
			{ID: 12, ClubID: 3, ClubName: "Debate", Status: hub.RequestStatusRejected},
		},
	}

	notifications, err := Aggregate(t.Context(), source, hub.User{ID: 30}, "token")
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	for _, notification := range notifications {
		require.Equal(t, NotificationUserUpdate, notification.Type)
		require.NotEqual(t, hub.RequestStatusPending, notification.Request.Status)
	}

	// Admin-only fetches never run for regular users.
	require.Empty(t, source.clubFetches)
}
