package membership

import (
	"github.com/clubhub-app/clubhub/server/hub"
)

// Status classifies a user's relationship to a club and decides which action
// control a page shows.
type Status string

const (
	StatusGuest     Status = "guest"
	StatusOwner     Status = "owner"
	StatusMember    Status = "member"
	StatusRequested Status = "requested"
	StatusNone      Status = "none"
)

// Resolve maps (user, club, own requests) to a membership status. It is a
// pure function over already-fetched data; nil or missing collections count
// as empty.
//
// The evaluation order is load-bearing: ownership dominates membership since
// an owner is not guaranteed to appear in the member roster, and a pending
// request blocks re-requesting while a rejected one deliberately falls
// through to none so the user can apply again.
func Resolve(user *hub.User, club hub.Club, myRequests []hub.JoinRequest) Status {
	if user == nil {
		return StatusGuest
	}

	if club.OwnerID == user.ID {
		return StatusOwner
	}

	for _, member := range club.Members {
		if member.UserID == user.ID {
			return StatusMember
		}
	}

	for _, req := range myRequests {
		if req.ClubID == club.ID && req.Status == hub.RequestStatusPending {
			return StatusRequested
		}
	}

	return StatusNone
}
