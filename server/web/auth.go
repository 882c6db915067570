package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/database"
	"github.com/clubhub-app/clubhub/server/hub"
)

// sessionDuration matches the backend token lifetime; an expired backend
// token is caught by 401 handling either way.
const sessionDuration = 7 * 24 * time.Hour

var protectedPrefixes = []string{
	"/dashboard",
	"/profile",
	"/chat",
	"/requests",
	"/clubs/new",
	"/events/new",
	"/oauth",
}

func protected(r *http.Request) bool {
	if r.Method != http.MethodGet && r.URL.Path != "/login" && r.URL.Path != "/signup" {
		return true
	}
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

// auth loads the session referenced by the session cookie into the request
// context. Unauthenticated requests to protected paths are redirected to the
// login page; everything else proceeds with the zero session.
func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session *database.Session
		cookie, err := r.Cookie("session")
		if err != nil && !errors.Is(err, http.ErrNoCookie) {
			slog.ErrorContext(ctx, "failed to get session cookie", slog.Any("err", err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if cookie != nil {
			session, err = h.DB.GetSession(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, database.ErrSessionExpired) {
					slog.ErrorContext(ctx, "failed to get session", slog.Any("err", err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				removeSessionCookie(w)
				session = nil
			}
		}

		if session == nil {
			if protected(r) {
				h.forceLogin(w, r)
				return
			}
			session = &database.Session{}
		}

		r = r.WithContext(auth.SetSession(ctx, *session))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) forceLogin(w http.ResponseWriter, r *http.Request) {
	u := url.URL{
		Path:     "/login",
		RawQuery: url.Values{"rd": {r.URL.Path}}.Encode(),
	}
	http.Redirect(w, r, u.String(), http.StatusFound)
}

// clearSession drops the local session after the backend rejected its token.
func (h *handler) clearSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := auth.GetSession(r)
	if session.ID != "" {
		if err := h.DB.DeleteSession(ctx, session.ID); err != nil {
			slog.ErrorContext(ctx, "failed to delete session", slog.Any("err", err))
		}
	}
	removeSessionCookie(w)
}

// hubError translates a hub client error into a response: expired backend
// tokens wipe the session and restart the login flow, everything else is
// surfaced verbatim.
func (h *handler) hubError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, hub.ErrUnauthorized) {
		h.clearSession(w, r)
		h.forceLogin(w, r)
		return
	}

	http.Error(w, "Request failed: "+err.Error(), http.StatusInternalServerError)
}

type LoginVars struct {
	User     *SessionUser
	Redirect string
	Error    string
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, r.URL.Query().Get("rd"), "")
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, redirect string, errorMessage string) {
	if err := h.Templates().ExecuteTemplate(w, "login.gohtml", LoginVars{
		User:     sessionUser(auth.GetSession(r)),
		Redirect: redirect,
		Error:    errorMessage,
	}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render login template", slog.Any("err", err))
	}
}

func (h *handler) DoLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.FormValue("email")
	password := r.FormValue("password")
	redirect := r.FormValue("rd")
	if redirect == "" {
		redirect = "/dashboard"
	}

	if email == "" || password == "" {
		h.renderLogin(w, r, redirect, "Email and password are required")
		return
	}

	login, err := h.Hub.Login(ctx, email, password)
	if err != nil {
		h.renderLogin(w, r, redirect, err.Error())
		return
	}

	now := time.Now()
	expiration := now.Add(sessionDuration)
	session := database.Session{
		ID:        auth.RandomStr(32),
		Token:     login.Token,
		UserID:    login.User.ID,
		UserName:  login.User.Name,
		IsAdmin:   login.User.IsAdmin,
		CreatedAt: now,
		ExpiresAt: expiration,
	}
	if err = h.DB.CreateSession(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session", slog.Any("err", err))
		h.renderLogin(w, r, redirect, "Failed to create session")
		return
	}

	addSessionCookie(w, session.ID, expiration)
	http.Redirect(w, r, redirect, http.StatusFound)
}

type SignupVars struct {
	User  *SessionUser
	Error string
}

func (h *handler) Signup(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, "")
}

func (h *handler) renderSignup(w http.ResponseWriter, r *http.Request, errorMessage string) {
	if err := h.Templates().ExecuteTemplate(w, "signup.gohtml", SignupVars{
		User:  sessionUser(auth.GetSession(r)),
		Error: errorMessage,
	}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render signup template", slog.Any("err", err))
	}
}

func (h *handler) DoSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := hub.SignupData{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Role:      r.FormValue("role"),
		Password:  r.FormValue("password"),
	}

	if data.Email == "" || data.Password == "" {
		h.renderSignup(w, r, "Email and password are required")
		return
	}

	if _, err := h.Hub.Signup(ctx, data); err != nil {
		h.renderSignup(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

func addSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    session,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}

func removeSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
		HttpOnly: true,
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}
