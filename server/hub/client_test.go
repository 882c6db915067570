package hub

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/xtime"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(Config{
		BaseURL:    srv.URL,
		Every:      xtime.Duration(time.Millisecond),
		Burst:      100,
		MaxRetries: 3,
	}, srv.Client())

	return client, srv
}

func TestJoinClubEmptyRole(t *testing.T) {
	var hits atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := client.JoinClub(t.Context(), "token", 1, "", "please")
	require.ErrorIs(t, err, ErrRoleRequired)

	// Validation happens before any network traffic.
	require.Zero(t, hits.Load())
}

func TestJoinClub(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/clubs/1/join", r.URL.Path)
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "club_id": 1, "user_id": 2, "role": "member", "status": "pending"}`))
	}))

	req, err := client.JoinClub(t.Context(), "token", 1, "member", "please")
	require.NoError(t, err)
	require.Equal(t, 7, req.ID)
	require.Equal(t, RequestStatusPending, req.Status)
}

func TestClientBackendError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Club not found"}`))
	}))

	_, err := client.GetClub(t.Context(), 42)
	require.EqualError(t, err, "Club not found")
}

func TestClientUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.GetMe(t.Context(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientRetriesTooManyRequests(t *testing.T) {
	var hits atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	clubs, err := client.GetClubs(t.Context())
	require.NoError(t, err)
	require.Empty(t, clubs)
	require.EqualValues(t, 3, hits.Load())
}

func TestClientRetriesExhausted(t *testing.T) {
	var hits atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.GetClubs(t.Context())
	require.ErrorIs(t, err, ErrTooManyRequests)
	require.EqualValues(t, 4, hits.Load())
}

func TestTimeUnmarshal(t *testing.T) {
	// The backend emits timezone-less ISO 8601 timestamps, meant as UTC.
	var ts Time
	require.NoError(t, ts.UnmarshalJSON([]byte(`"2026-03-14T15:09:26"`)))
	require.Equal(t, time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC), ts.Time())

	require.NoError(t, ts.UnmarshalJSON([]byte(`"2026-03-14T15:09:26Z"`)))
	require.Equal(t, time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC), ts.Time())

	require.NoError(t, ts.UnmarshalJSON([]byte(`null`)))
	require.True(t, ts.Time().IsZero())
}
