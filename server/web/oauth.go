package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clubhub-app/clubhub/server/auth"
)

const oauthStateCookieName = "oauthstate"

// OAuthConnect redirects the user to the provider's authorization page. The
// state is stored server-side and mirrored in a short-lived cookie so the
// callback can reject forged requests.
func (h *handler) OAuthConnect(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")

	cfg, ok := h.Auth.Provider(provider)
	if !ok {
		http.Error(w, "Unknown provider", http.StatusNotFound)
		return
	}

	state := h.Auth.NewState(provider, "/profile")
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(auth.MaxConnectFlowDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, cfg.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallback verifies the state and forwards the authorization code to the
// backend, which performs the token exchange and links the account.
func (h *handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	query := r.URL.Query()
	state := query.Get("state")

	cookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || cookie.Value != state {
		http.Error(w, "Invalid oauth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:   oauthStateCookieName,
		Path:   "/",
		MaxAge: -1,
	})

	provider, redirectURL, ok := h.Auth.GetState(state)
	if !ok || provider != r.PathValue("provider") {
		http.Error(w, "Invalid oauth state", http.StatusBadRequest)
		return
	}

	if errMsg := query.Get("error"); errMsg != "" {
		slog.ErrorContext(ctx, "OAuth provider returned error", slog.String("provider", provider), slog.String("err", errMsg))
		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
		return
	}

	if _, err = h.Hub.OAuthCallback(ctx, session.Token, provider, query.Get("code")); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

func (h *handler) OAuthDisconnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if err := h.Hub.OAuthDisconnect(ctx, session.Token, r.PathValue("provider")); err != nil {
		h.hubError(w, r, err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
