package membership

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/server/hub"
)

func TestResolveGuest(t *testing.T) {
	club := hub.Club{ID: 1, OwnerID: 10}

	require.Equal(t, StatusGuest, Resolve(nil, club, nil))
}

func TestResolveOwner(t *testing.T) {
	user := &hub.User{ID: 10}
	club := hub.Club{ID: 1, OwnerID: 10}

	require.Equal(t, StatusOwner, Resolve(user, club, nil))
}

func TestResolveOwnerNotInRoster(t *testing.T) {
	// Owners do not necessarily appear in the member roster.
	user := &hub.User{ID: 10}
	club := hub.Club{
		ID:      1,
		OwnerID: 10,
		Members: []hub.ClubMember{{UserID: 20, Role: "member"}},
	}

	require.Equal(t, StatusOwner, Resolve(user, club, nil))
}

func TestResolveOwnerBeatsMembership(t *testing.T) {
	user := &hub.User{ID: 10}
	club := hub.Club{
		ID:      1,
		OwnerID: 10,
		Members: []hub.ClubMember{{UserID: 10, Role: "president"}},
	}

	require.Equal(t, StatusOwner, Resolve(user, club, nil))
}

func TestResolveMember(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{
		ID:      1,
		OwnerID: 10,
		Members: []hub.ClubMember{{UserID: 20, Role: "member"}},
	}

	require.Equal(t, StatusMember, Resolve(user, club, nil))
}

func TestResolveMemberBeatsPendingRequest(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{
		ID:      1,
		OwnerID: 10,
		Members: []hub.ClubMember{{UserID: 20, Role: "member"}},
	}
	requests := []hub.JoinRequest{
		{ID: 1, ClubID: 1, UserID: 20, Status: hub.RequestStatusPending},
	}

	require.Equal(t, StatusMember, Resolve(user, club, requests))
}

func TestResolveRequested(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{ID: 1, OwnerID: 10}
	requests := []hub.JoinRequest{
		{ID: 1, ClubID: 1, UserID: 20, Status: hub.RequestStatusPending},
	}

	require.Equal(t, StatusRequested, Resolve(user, club, requests))
}

func TestResolveRejectedFallsThroughToNone(t *testing.T) {
	// A rejected request must not block re-applying.
	user := &hub.User{ID: 20}
	club := hub.Club{ID: 1, OwnerID: 10}
	requests := []hub.JoinRequest{
		{ID: 1, ClubID: 1, UserID: 20, Status: hub.RequestStatusRejected},
	}

	require.Equal(t, StatusNone, Resolve(user, club, requests))
}

func TestResolveAcceptedRequestWithoutMembershipIsNone(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{ID: 1, OwnerID: 10}
	requests := []hub.JoinRequest{
		{ID: 1, ClubID: 1, UserID: 20, Status: hub.RequestStatusAccepted},
	}

	require.Equal(t, StatusNone, Resolve(user, club, requests))
}

func TestResolveRequestForOtherClubIgnored(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{ID: 1, OwnerID: 10}
	requests := []hub.JoinRequest{
		{ID: 1, ClubID: 2, UserID: 20, Status: hub.RequestStatusPending},
	}

	require.Equal(t, StatusNone, Resolve(user, club, requests))
}

func TestResolveNone(t *testing.T) {
	user := &hub.User{ID: 20}
	club := hub.Club{ID: 1, OwnerID: 10}

	require.Equal(t, StatusNone, Resolve(user, club, nil))
}
