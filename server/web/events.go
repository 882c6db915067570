package web

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/clubhub-app/clubhub/internal/xquery"
	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

type EventsVars struct {
	User   *SessionUser
	Events []Event
}

func (h *handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	events, err := h.Hub.GetEvents(ctx)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	if status := xquery.ParseString(r.URL.Query(), "status", ""); status != "" {
		events = slices.DeleteFunc(events, func(event hub.Event) bool {
			return string(event.Status) != status
		})
	}

	vars := EventsVars{
		User:   sessionUser(session),
		Events: make([]Event, len(events)),
	}
	for i, event := range events {
		vars.Events[i] = newEvent(event)
	}

	if err = h.Templates().ExecuteTemplate(w, "events.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render events template", slog.Any("err", err))
	}
}
