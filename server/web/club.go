package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
	"github.com/clubhub-app/clubhub/server/membership"
)

type ClubVars struct {
	User    *SessionUser
	Club    Club
	Events  []Event
	Status  membership.Status
	Success string
	Error   string
}

func (h *handler) Club(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clubID, err := strconv.Atoi(r.PathValue("club_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	club, err := h.Hub.GetClub(ctx, clubID)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	session := auth.GetSession(r)

	var myRequests []hub.JoinRequest
	if session.LoggedIn() {
		myRequests, err = h.Hub.GetMyRequests(ctx, session.Token)
		if err != nil {
			h.hubError(w, r, err)
			return
		}
	}

	h.renderClub(w, r, *club, myRequests, "", "")
}

func (h *handler) renderClub(w http.ResponseWriter, r *http.Request, club hub.Club, myRequests []hub.JoinRequest, success string, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	var user *hub.User
	if session.LoggedIn() {
		u := hubUser(session)
		user = &u
	}

	events := make([]Event, len(club.Events))
	for i, event := range club.Events {
		events[i] = newEvent(event)
	}

	if err := h.Templates().ExecuteTemplate(w, "club.gohtml", ClubVars{
		User:    sessionUser(session),
		Club:    newClub(club),
		Events:  events,
		Status:  membership.Resolve(user, club, myRequests),
		Success: success,
		Error:   errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render club template", slog.Int("club_id", club.ID), slog.Any("err", err))
	}
}

// JoinClub submits a join request. The in-flight guard rejects a second
// submission racing the first; local request state is only touched after the
// backend confirmed the create.
func (h *handler) JoinClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clubID, err := strconv.Atoi(r.PathValue("club_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	club, err := h.Hub.GetClub(ctx, clubID)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	session := auth.GetSession(r)

	myRequests, err := h.Hub.GetMyRequests(ctx, session.Token)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	role := r.FormValue("role")
	message := r.FormValue("message")

	if role != "" && !slices.Contains(club.Roles, role) {
		h.renderClub(w, r, *club, myRequests, "", fmt.Sprintf("Role %q is not offered by this club", role))
		return
	}

	guardKey := fmt.Sprintf("%d:%d", session.UserID, clubID)
	if !h.joinGuard.Begin(guardKey) {
		h.renderClub(w, r, *club, myRequests, "", "Your join request is already being submitted")
		return
	}
	defer h.joinGuard.End(guardKey)

	req, err := h.Hub.JoinClub(ctx, session.Token, clubID, role, message)
	if err != nil {
		if errors.Is(err, hub.ErrUnauthorized) {
			h.clearSession(w, r)
			h.forceLogin(w, r)
			return
		}
		h.renderClub(w, r, *club, myRequests, "", err.Error())
		return
	}

	// Append the confirmed request so the page immediately shows the
	// pending state without refetching the request list.
	myRequests = append(myRequests, *req)
	h.renderClub(w, r, *club, myRequests, "Join request sent successfully!", "")
}
