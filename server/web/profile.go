package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

var socialPlatforms = []string{"github", "linkedin", "twitter", "instagram"}

type ProfileVars struct {
	User        *SessionUser
	Profile     Profile
	Providers   []OAuthProvider
	SocialLinks []SocialLink
	Success     string
	Error       string
}

type Profile struct {
	Name  string
	Email string
	Bio   string
}

type SocialLink struct {
	Platform string
	URL      string
}

// OAuthProvider describes one connect button on the profile page.
type OAuthProvider struct {
	Name      string
	Connected bool
}

func (h *handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	me, err := h.Hub.GetMe(ctx, session.Token)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	h.renderProfile(w, r, *me, "", "")
}

func (h *handler) renderProfile(w http.ResponseWriter, r *http.Request, me hub.User, success string, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	connected := map[string]bool{}
	for _, account := range me.OAuthAccounts {
		connected[account.Provider] = true
	}

	var providers []OAuthProvider
	for _, name := range h.Auth.Providers() {
		providers = append(providers, OAuthProvider{
			Name:      name,
			Connected: connected[name],
		})
	}

	links := make([]SocialLink, 0, len(socialPlatforms))
	for _, platform := range socialPlatforms {
		links = append(links, SocialLink{
			Platform: platform,
			URL:      me.SocialMedia[platform],
		})
	}

	if err := h.Templates().ExecuteTemplate(w, "profile.gohtml", ProfileVars{
		User: sessionUser(session),
		Profile: Profile{
			Name:  me.Name,
			Email: me.Email,
			Bio:   me.Bio,
		},
		Providers:   providers,
		SocialLinks: links,
		Success:     success,
		Error:       errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render profile template", slog.Any("err", err))
	}
}

func (h *handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	socialMedia := map[string]string{}
	for _, platform := range socialPlatforms {
		if url := strings.TrimSpace(r.FormValue("social_" + platform)); url != "" {
			socialMedia[platform] = url
		}
	}

	me, err := h.Hub.UpdateMe(ctx, session.Token, hub.UserUpdate{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Bio:         r.FormValue("bio"),
		SocialMedia: socialMedia,
	})
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	// The navbar shows the session copy of the name, keep it in sync.
	if me.Name != session.UserName {
		if err = h.DB.UpdateSessionUser(ctx, session.ID, me.Name, me.IsAdmin); err != nil {
			slog.ErrorContext(ctx, "Failed to update session user", slog.Any("err", err))
		}
		session.UserName = me.Name
		r = r.WithContext(auth.SetSession(ctx, session))
	}

	h.renderProfile(w, r, *me, "Profile updated successfully!", "")
}

func (h *handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if err := h.Hub.DeleteMe(ctx, session.Token); err != nil {
		h.hubError(w, r, err)
		return
	}

	if err := h.DB.DeleteUserSessions(ctx, session.UserID); err != nil {
		slog.ErrorContext(ctx, "Failed to delete user sessions", slog.Any("err", err))
	}
	removeSessionCookie(w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
