package web

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/clubhub-app/clubhub/internal/xquery"
	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
	"github.com/clubhub-app/clubhub/server/membership"
)

type ClubsVars struct {
	User  *SessionUser
	Clubs []ClubWithStatus
}

type ClubWithStatus struct {
	Club
	Status membership.Status
}

func (h *handler) Clubs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clubs, err := h.Hub.GetClubs(ctx)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	if category := xquery.ParseString(r.URL.Query(), "category", ""); category != "" {
		clubs = slices.DeleteFunc(clubs, func(club hub.Club) bool {
			return !strings.EqualFold(club.Category, category)
		})
	}

	session := auth.GetSession(r)

	// One request fetch serves the status of every club on the page; the
	// resolver itself never talks to the network.
	var user *hub.User
	var myRequests []hub.JoinRequest
	if session.LoggedIn() {
		u := hubUser(session)
		user = &u

		myRequests, err = h.Hub.GetMyRequests(ctx, session.Token)
		if err != nil {
			h.hubError(w, r, err)
			return
		}
	}

	clubVars := make([]ClubWithStatus, len(clubs))
	for i, club := range clubs {
		clubVars[i] = ClubWithStatus{
			Club:   newClub(club),
			Status: membership.Resolve(user, club, myRequests),
		}
	}

	if err = h.Templates().ExecuteTemplate(w, "clubs.gohtml", ClubsVars{
		User:  sessionUser(session),
		Clubs: clubVars,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render clubs template", slog.Any("err", err))
	}
}
