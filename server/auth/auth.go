package auth

import (
	"slices"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// MaxConnectFlowDuration bounds how long a provider connect flow may take
// between the redirect and the callback.
const MaxConnectFlowDuration = 30 * time.Minute

type connectState struct {
	Provider    string
	RedirectURL string
	CreatedAt   time.Time
}

func (s connectState) IsExpired() bool {
	return time.Since(s.CreatedAt) > MaxConnectFlowDuration
}

func New(cfg Config) *Auth {
	a := &Auth{
		cfg: cfg,
		providers: map[string]*oauth2.Config{
			"github": {
				ClientID:    cfg.GitHub.ClientID,
				Endpoint:    endpoints.GitHub,
				RedirectURL: cfg.PublicURL + "/oauth/github/callback",
				Scopes:      []string{"read:user"},
			},
			"linkedin": {
				ClientID:    cfg.LinkedIn.ClientID,
				Endpoint:    endpoints.LinkedIn,
				RedirectURL: cfg.PublicURL + "/oauth/linkedin/callback",
				Scopes:      []string{"openid", "profile", "email"},
			},
		},
		states: make(map[string]connectState),
	}

	go a.cleanupStates()

	return a
}

// Auth tracks the OAuth connect flows for linking GitHub/LinkedIn accounts.
// The token exchange itself happens in the backend; only the authorization
// redirect and its CSRF state live here.
type Auth struct {
	cfg       Config
	providers map[string]*oauth2.Config
	states    map[string]connectState
	statesMu  sync.Mutex
}

// Provider returns the oauth2 config for a provider name, if it is known and
// configured.
func (a *Auth) Provider(name string) (*oauth2.Config, bool) {
	cfg, ok := a.providers[name]
	if !ok || cfg.ClientID == "" {
		return nil, false
	}
	return cfg, true
}

// Providers returns the names of all configured providers, sorted.
func (a *Auth) Providers() []string {
	var names []string
	for name, cfg := range a.providers {
		if cfg.ClientID != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (a *Auth) NewState(provider string, redirectURL string) string {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	state := RandomStr(32)
	a.states[state] = connectState{
		Provider:    provider,
		RedirectURL: redirectURL,
		CreatedAt:   time.Now(),
	}
	return state
}

// GetState consumes a state and returns the provider it was issued for and
// the URL to return the user to afterwards.
func (a *Auth) GetState(state string) (string, string, bool) {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	cState, ok := a.states[state]
	if ok {
		delete(a.states, state)
	}

	if cState.IsExpired() {
		return "", "", false
	}

	return cState.Provider, cState.RedirectURL, ok
}

func (a *Auth) cleanupStates() {
	for {
		a.doCleanupStates()
		time.Sleep(10 * time.Minute)
	}
}

func (a *Auth) doCleanupStates() {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	for state, cState := range a.states {
		if cState.IsExpired() {
			delete(a.states, state)
		}
	}
}
