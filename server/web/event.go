package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/clubhub-app/clubhub/internal/xio"
	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

type EventVars struct {
	User          *SessionUser
	Event         Event
	Announcements []Announcement
	CanManage     bool
	Error         string
}

type Announcement struct {
	ID      int
	Title   string
	Content string
}

func (h *handler) Event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	event, err := h.Hub.GetEvent(ctx, eventID)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	announcements, err := h.Hub.GetEventAnnouncements(ctx, eventID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get event announcements", slog.Int("event_id", eventID), slog.Any("err", err))
	}

	h.renderEvent(w, r, *event, announcements, "")
}

func (h *handler) renderEvent(w http.ResponseWriter, r *http.Request, event hub.Event, announcements []hub.Announcement, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	vars := EventVars{
		User:          sessionUser(session),
		Event:         newEvent(event),
		Announcements: make([]Announcement, len(announcements)),
		CanManage:     session.LoggedIn() && session.IsAdmin,
		Error:         errorMessage,
	}
	for i, announcement := range announcements {
		vars.Announcements[i] = Announcement{
			ID:      announcement.ID,
			Title:   announcement.Title,
			Content: announcement.Content,
		}
	}

	if err := h.Templates().ExecuteTemplate(w, "event.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render event template", slog.Int("event_id", event.ID), slog.Any("err", err))
	}
}

func (h *handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if _, err = h.Hub.CreateAnnouncement(ctx, session.Token, hub.AnnouncementCreate{
		EventID: eventID,
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", eventID), http.StatusSeeOther)
}

// EventQRCode renders the event's external link (or its own page when the
// event has none) as a PNG QR code.
func (h *handler) EventQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	event, err := h.Hub.GetEvent(ctx, eventID)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	link := event.Link
	if link == "" {
		link = fmt.Sprintf("%s/events/%d", h.Cfg.Server.PublicURL, event.ID)
	}

	qr, err := qrcode.New(link)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.Any("err", err))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	qrW := standard.NewWithWriter(xio.NopWriteCloser(w),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.Any("err", err))
	}
}
