package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/hub"
)

type RequestVars struct {
	User      *SessionUser
	Request   Request
	Applicant *Applicant
	Error     string
}

// Applicant is the join request's user_details payload, when the backend
// includes it.
type Applicant struct {
	Name      string
	Bio       string
	GitHubURL string
}

func newApplicant(user *hub.User) *Applicant {
	if user == nil {
		return nil
	}

	applicant := &Applicant{
		Name: user.Name,
		Bio:  user.Bio,
	}
	if url, ok := user.SocialMedia["github"]; ok {
		applicant.GitHubURL = url
	} else {
		for _, account := range user.OAuthAccounts {
			if account.Provider != "github" {
				continue
			}
			if url, ok := account.MetaData["html_url"].(string); ok {
				applicant.GitHubURL = url
			}
			break
		}
	}
	return applicant
}

func (h *handler) Request(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := strconv.Atoi(r.PathValue("request_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	session := auth.GetSession(r)
	req, err := h.Hub.GetRequest(ctx, session.Token, requestID)
	if err != nil {
		h.hubError(w, r, err)
		return
	}

	h.renderRequest(w, r, *req, "")
}

// ResolveRequest accepts or rejects a pending join request. The page is only
// re-rendered from the backend's response, so a stale form never flips an
// already resolved request back.
func (h *handler) ResolveRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := strconv.Atoi(r.PathValue("request_id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	session := auth.GetSession(r)

	var status hub.RequestStatus
	switch r.FormValue("action") {
	case "accept":
		status = hub.RequestStatusAccepted
	case "reject":
		status = hub.RequestStatusRejected
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	req, err := h.Hub.HandleRequest(ctx, session.Token, requestID, status, r.FormValue("admin_response"))
	if err != nil {
		current, getErr := h.Hub.GetRequest(ctx, session.Token, requestID)
		if getErr != nil {
			h.hubError(w, r, err)
			return
		}
		h.renderRequest(w, r, *current, err.Error())
		return
	}

	h.renderRequest(w, r, *req, "")
}

func (h *handler) renderRequest(w http.ResponseWriter, r *http.Request, req hub.JoinRequest, errorMessage string) {
	ctx := r.Context()
	session := auth.GetSession(r)

	if err := h.Templates().ExecuteTemplate(w, "request.gohtml", RequestVars{
		User:      sessionUser(session),
		Request:   newRequest(req),
		Applicant: newApplicant(req.UserDetails),
		Error:     errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render request template", slog.Int("request_id", req.ID), slog.Any("err", err))
	}
}
