package web

import (
	"log/slog"
	"net/http"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/membership"
)

type DashboardVars struct {
	User          *SessionUser
	Notifications []Notification
	ManagedClubs  []Club
	MyRequests    []Request
}

// Dashboard shows the logged-in user's notifications, the clubs they manage
// and their own join requests.
func (h *handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)
	user := hubUser(session)

	notifications, err := membership.Aggregate(ctx, h.Hub, user, session.Token)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	vars := DashboardVars{
		User:          sessionUser(session),
		Notifications: make([]Notification, len(notifications)),
	}
	for i, notification := range notifications {
		vars.Notifications[i] = newNotification(notification)
	}

	if session.IsAdmin {
		managed, err := h.Hub.GetManagedClubs(ctx, session.Token)
		if err != nil {
			h.hubError(w, r, err)
			return
		}
		vars.ManagedClubs = make([]Club, len(managed))
		for i, club := range managed {
			vars.ManagedClubs[i] = newClub(club)
		}
	}

	myRequests, err := h.Hub.GetMyRequests(ctx, session.Token)
	if err != nil {
		h.hubError(w, r, err)
		return
	}
	vars.MyRequests = make([]Request, len(myRequests))
	for i, req := range myRequests {
		vars.MyRequests[i] = newRequest(req)
	}

	if err = h.Templates().ExecuteTemplate(w, "dashboard.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render dashboard template", slog.Any("err", err))
	}
}
