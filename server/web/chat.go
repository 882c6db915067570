package web

import (
	"log/slog"
	"net/http"

	"github.com/clubhub-app/clubhub/server/auth"
)

type ChatVars struct {
	User     *SessionUser
	Message  string
	Response string
	Error    string
}

func (h *handler) Chat(w http.ResponseWriter, r *http.Request) {
	h.renderChat(w, r, "", "", "")
}

// DoChat sends the message to the campus assistant and renders the latest
// exchange. The conversation itself lives in the backend.
func (h *handler) DoChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	message := r.FormValue("message")
	if message == "" {
		h.renderChat(w, r, "", "", "Please enter a message")
		return
	}

	response, err := h.Hub.Chat(ctx, session.Token, message)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	if response.Action == "error" {
		h.renderChat(w, r, message, "", response.Response)
		return
	}

	h.renderChat(w, r, message, response.Response, "")
}

func (h *handler) renderChat(w http.ResponseWriter, r *http.Request, message string, response string, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if err := h.Templates().ExecuteTemplate(w, "chat.gohtml", ChatVars{
		User:     sessionUser(session),
		Message:  message,
		Response: response,
		Error:    errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render chat template", slog.Any("err", err))
	}
}
