package web

import (
	"log/slog"
	"net/http"

	"github.com/clubhub-app/clubhub/server/auth"
)

type IndexVars struct {
	User   *SessionUser
	Clubs  []Club
	Events []Event
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The landing page is best effort; a backend hiccup degrades to empty
	// sections instead of an error page.
	clubs, err := h.Hub.GetClubs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch clubs for index", slog.Any("err", err))
	}

	events, err := h.Hub.GetEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch events for index", slog.Any("err", err))
	}

	const featured = 4
	indexClubs := make([]Club, 0, featured)
	for _, club := range clubs {
		if len(indexClubs) == featured {
			break
		}
		indexClubs = append(indexClubs, newClub(club))
	}

	indexEvents := make([]Event, 0, featured)
	for _, event := range events {
		if len(indexEvents) == featured {
			break
		}
		indexEvents = append(indexEvents, newEvent(event))
	}

	if err = h.Templates().ExecuteTemplate(w, "index.gohtml", IndexVars{
		User:   sessionUser(auth.GetSession(r)),
		Clubs:  indexClubs,
		Events: indexEvents,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.Any("err", err))
	}
}
