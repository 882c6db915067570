package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

const maxUploadSize = 8 << 20

type ClubFormVars struct {
	User  *SessionUser
	Club  Club
	Edit  bool
	Error string
}

func (h *handler) NewClub(w http.ResponseWriter, r *http.Request) {
	h.renderClubForm(w, r, hub.Club{}, false, "")
}

func (h *handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	create, err := h.parseClubForm(r, session.Token)
	if err != nil {
		h.renderClubForm(w, r, hub.Club{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Category:    r.FormValue("category"),
		}, false, err.Error())
		return
	}

	club, err := h.Hub.CreateClub(ctx, session.Token, *create)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/clubs/%d", club.ID), http.StatusSeeOther)
}

func (h *handler) EditClub(w http.ResponseWriter, r *http.Request) {
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
	if club.OwnerID != session.UserID && !session.IsAdmin {
		http.Error(w, "You are not allowed to edit this club", http.StatusForbidden)
		return
	}

	h.renderClubForm(w, r, *club, true, "")
}

func (h *handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

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

	update, err := h.parseClubForm(r, session.Token)
	if err != nil {
		h.renderClubForm(w, r, *club, true, err.Error())
		return
	}
	if update.LogoURL == "" {
		update.LogoURL = club.LogoURL
	}

	if _, err = h.Hub.UpdateClub(ctx, session.Token, clubID, *update); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/clubs/%d", clubID), http.StatusSeeOther)
}

func (h *handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	clubID, err := strconv.Atoi(r.PathValue("club_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	if err = h.Hub.DeleteClub(ctx, session.Token, clubID); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}

// parseClubForm reads the club form fields and uploads the logo, if any. The
// roles textarea holds one role per line; blank lines are skipped.
func (h *handler) parseClubForm(r *http.Request, token string) (*hub.ClubCreate, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, fmt.Errorf("club name is required")
	}

	var roles []string
	for line := range strings.Lines(r.FormValue("roles")) {
		if role := strings.TrimSpace(line); role != "" {
			roles = append(roles, role)
		}
	}

	create := &hub.ClubCreate{
		Name:        name,
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Roles:       roles,
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		if err == http.ErrMissingFile {
			return create, nil
		}
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}
	defer file.Close()

	logoURL, err := h.Hub.Upload(r.Context(), token, header.Filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}
	create.LogoURL = logoURL

	return create, nil
}

func (h *handler) renderClubForm(w http.ResponseWriter, r *http.Request, club hub.Club, edit bool, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if err := h.Templates().ExecuteTemplate(w, "club_form.gohtml", ClubFormVars{
		User:  sessionUser(session),
		Club:  newClub(club),
		Edit:  edit,
		Error: errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render club form template", slog.Any("err", err))
	}
}
