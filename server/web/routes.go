package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/clubhub-app/clubhub/server"
	"github.com/clubhub-app/clubhub/server/auth"
)

type handler struct {
	*server.Server

	joinGuard *inFlightGuard
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server:    srv,
		joinGuard: newInFlightGuard(),
	}

	fileServer := http.FileServer(h.StaticFS)
	var fs http.Handler
	if srv.Cfg.Dev {
		fs = fileServer
	} else {
		fs = cache(fileServer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET  /login", h.Login)
	mux.HandleFunc("POST /login", h.DoLogin)
	mux.HandleFunc("GET  /signup", h.Signup)
	mux.HandleFunc("POST /signup", h.DoSignup)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.HandleFunc("GET  /clubs", h.Clubs)
	mux.HandleFunc("GET  /clubs/new", h.NewClub)
	mux.HandleFunc("POST /clubs/new", h.CreateClub)
	mux.HandleFunc("GET  /clubs/{club_id}", h.Club)
	mux.HandleFunc("POST /clubs/{club_id}/join", h.JoinClub)
	mux.HandleFunc("GET  /clubs/{club_id}/edit", h.EditClub)
	mux.HandleFunc("POST /clubs/{club_id}/edit", h.UpdateClub)
	mux.HandleFunc("POST /clubs/{club_id}/delete", h.DeleteClub)

	mux.HandleFunc("GET  /dashboard", h.Dashboard)

	mux.HandleFunc("GET  /requests/{request_id}", h.Request)
	mux.HandleFunc("POST /requests/{request_id}", h.ResolveRequest)

	mux.HandleFunc("GET  /events", h.Events)
	mux.HandleFunc("GET  /events/new", h.NewEvent)
	mux.HandleFunc("POST /events/new", h.CreateEvent)
	mux.HandleFunc("GET  /events/{event_id}", h.Event)
	mux.HandleFunc("GET  /events/{event_id}/edit", h.EditEvent)
	mux.HandleFunc("POST /events/{event_id}/edit", h.UpdateEvent)
	mux.HandleFunc("GET  /events/{event_id}/qr", h.EventQRCode)
	mux.HandleFunc("POST /events/{event_id}/announcements", h.CreateAnnouncement)

	mux.HandleFunc("GET  /profile", h.Profile)
	mux.HandleFunc("POST /profile", h.UpdateProfile)
	mux.HandleFunc("POST /profile/delete", h.DeleteAccount)

	mux.HandleFunc("GET /oauth/{provider}/connect", h.OAuthConnect)
	mux.HandleFunc("GET /oauth/{provider}/callback", h.OAuthCallback)
	mux.HandleFunc("POST /oauth/{provider}/disconnect", h.OAuthDisconnect)

	mux.HandleFunc("GET  /chat", h.Chat)
	mux.HandleFunc("POST /chat", h.DoChat)

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	if srv.Cfg.Dev {
		mux.HandleFunc("GET /dev/reload", h.DevReload)
	}

	mux.HandleFunc("/", h.NotFound)

	return accessLog(h.auth(mux))
}

type NotFoundVars struct {
	User *SessionUser
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", NotFoundVars{
		User: sessionUser(auth.GetSession(r)),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.Any("err", err))
	}
}

func cache(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "stale-while-revalidate, max-age=3600") // Cache for 1 hour, revalidate after stale
		handler.ServeHTTP(w, r)
	})
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.InfoContext(r.Context(), "Request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// DevReload streams server-sent events that instruct the browser to refresh
// whenever the dev watcher picks up a change on disk. The SSE connection
// stays open until the client disconnects or the server shuts down.
func (h *handler) DevReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadNotifier == nil {
		http.NotFound(w, r)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, ch := h.ReloadNotifier.Subscribe()
	defer h.ReloadNotifier.Unsubscribe(id)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
