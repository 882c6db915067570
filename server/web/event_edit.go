package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clubhub-app/clubhub/internal/xquery"
	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

// datetime-local inputs submit without seconds or zone.
const formDateLayout = "2006-01-02T15:04"

type EventFormVars struct {
	User  *SessionUser
	Event Event
	Clubs []Club
	Edit  bool
	Error string
}

func (h *handler) NewEvent(w http.ResponseWriter, r *http.Request) {
	clubID := xquery.ParseInt(r.URL.Query(), "club", 0)
	h.renderEventForm(w, r, hub.Event{ClubID: clubID}, false, "")
}

func (h *handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	create, err := h.parseEventForm(r, session.Token)
	if err != nil {
		h.renderEventForm(w, r, hub.Event{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Location:    r.FormValue("location"),
		}, false, err.Error())
		return
	}

	event, err := h.Hub.CreateEvent(ctx, session.Token, *create)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", event.ID), http.StatusSeeOther)
}

func (h *handler) EditEvent(w http.ResponseWriter, r *http.Request) {
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

	h.renderEventForm(w, r, *event, true, "")
}

func (h *handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

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

	update, err := h.parseEventForm(r, session.Token)
	if err != nil {
		h.renderEventForm(w, r, *event, true, err.Error())
		return
	}
	if update.PosterURL == "" {
		update.PosterURL = event.PosterURL
	}
	if update.ClubID == 0 {
		update.ClubID = event.ClubID
	}

	if _, err = h.Hub.UpdateEvent(ctx, session.Token, eventID, *update); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/events/%d", eventID), http.StatusSeeOther)
}

func (h *handler) parseEventForm(r *http.Request, token string) (*hub.EventCreate, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		return nil, fmt.Errorf("event title is required")
	}

	clubID, err := strconv.Atoi(r.FormValue("club_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid club")
	}

	startDate, err := time.ParseInLocation(formDateLayout, r.FormValue("start_date"), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start date")
	}
	endDate, err := time.ParseInLocation(formDateLayout, r.FormValue("end_date"), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	var fee float64
	if value := r.FormValue("fee"); value != "" {
		if fee, err = strconv.ParseFloat(value, 64); err != nil {
			return nil, fmt.Errorf("invalid fee")
		}
	}

	create := &hub.EventCreate{
		Title:       title,
		Description: r.FormValue("description"),
		ClubID:      clubID,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    r.FormValue("location"),
		Fee:         fee,
		Link:        r.FormValue("link"),
	}

	file, header, err := r.FormFile("poster")
	if err != nil {
		if err == http.ErrMissingFile {
			return create, nil
		}
		return nil, fmt.Errorf("failed to read poster: %w", err)
	}
	defer file.Close()

	posterURL, err := h.Hub.Upload(r.Context(), token, header.Filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload poster: %w", err)
	}
	create.PosterURL = posterURL

	return create, nil
}

func (h *handler) renderEventForm(w http.ResponseWriter, r *http.Request, event hub.Event, edit bool, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	vars := EventFormVars{
		User:  sessionUser(session),
		Event: newEvent(event),
		Edit:  edit,
		Error: errorMessage,
	}

	// The club select only offers clubs the user manages.
	managed, err := h.Hub.GetManagedClubs(ctx, session.Token)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get managed clubs", slog.Any("err", err))
	}
	vars.Clubs = make([]Club, len(managed))
	for i, club := range managed {
		vars.Clubs[i] = newClub(club)
	}

	if err = h.Templates().ExecuteTemplate(w, "event_form.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render event form template", slog.Any("err", err))
	}
}
