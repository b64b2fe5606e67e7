package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	*httptest.Server
	profileGets  atomic.Int64
	unauthorized atomic.Bool
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()

	s := &stubServer{}
	userID := uuid.New()

	profile := &models.PregnancyProfile{
		ID:                  uuid.New(),
		UserID:              userID.String(),
		Email:               "amina@example.com",
		CalculationMethod:   models.MethodLastMenstrualPeriod,
		LastMenstrualPeriod: "2024-01-01",
	}

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	auth := func(w http.ResponseWriter, status int) {
		writeJSON(w, status, dto.AuthResponse{
			Success: true,
			User:    dto.UserView{ID: userID, FirstName: "Amina", Email: "amina@example.com"},
			Token:   "stub-token",
		})
	}
	mux.HandleFunc("/api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		auth(w, http.StatusCreated)
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		auth(w, http.StatusOK)
	})

	mux.HandleFunc("/api/pregnancy-profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if s.unauthorized.Load() || r.Header.Get("Authorization") != "Bearer stub-token" {
				writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
				return
			}
			s.profileGets.Add(1)
			writeJSON(w, http.StatusOK, dto.ProfileResponse{Success: true, Data: profile})
		case http.MethodPost:
			var req dto.ProfileRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			saved := *profile
			saved.Hospital = req.Hospital
			saved.DueDate = req.DueDate
			if req.CalculationMethod != "" {
				saved.CalculationMethod = req.CalculationMethod
				saved.LastMenstrualPeriod = req.LastMenstrualPeriod
			}
			writeJSON(w, http.StatusOK, dto.ProfileResponse{
				Success: true,
				Message: "Pregnancy profile updated successfully",
				Data:    &saved,
			})
		default:
			http.NotFound(w, r)
		}
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func newTestClient(t *testing.T) (*Client, *stubServer) {
	t.Helper()

	srv := newStubServer(t)
	return New(srv.URL, NewCache(t.TempDir())), srv
}

func TestClient_LoginPersistsSession(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)

	_, err := c.Session()
	require.ErrorIs(t, err, ErrNoSession)

	resp, err := c.Login(context.Background(), "amina@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "stub-token", resp.Token)

	session, err := c.Session()
	require.NoError(t, err)
	assert.Equal(t, "stub-token", session.Token)
	assert.Equal(t, "amina@example.com", session.User.Email)
	assert.Nil(t, session.Profile)
}

func TestClient_ProfileServedFromMirror(t *testing.T) {
	t.Parallel()

	c, srv := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "amina@example.com", "secret")
	require.NoError(t, err)

	// First read fills the mirror.
	p, err := c.Profile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", p.LastMenstrualPeriod)
	assert.EqualValues(t, 1, srv.profileGets.Load())

	// Cached read: no round trip.
	_, err = c.Profile(ctx, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, srv.profileGets.Load())

	// Forced refresh goes back to the server.
	_, err = c.Profile(ctx, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, srv.profileGets.Load())
}

func TestClient_SaveProfileUpdatesMirror(t *testing.T) {
	t.Parallel()

	c, srv := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "amina@example.com", "secret")
	require.NoError(t, err)

	saved, err := c.SaveProfile(ctx, dto.ProfileRequest{
		Email:               "amina@example.com",
		CalculationMethod:   models.MethodLastMenstrualPeriod,
		LastMenstrualPeriod: "2024-01-01",
		Hospital:            "Kenyatta National Hospital",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kenyatta National Hospital", saved.Hospital)

	// The mirror now answers without a round trip.
	p, err := c.Profile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Kenyatta National Hospital", p.Hospital)
	assert.Zero(t, srv.profileGets.Load())
}

func TestClient_ProgressFromMirror(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "amina@example.com", "secret")
	require.NoError(t, err)

	_, err = c.Progress(time.Now())
	require.ErrorIs(t, err, ErrNoProfile)

	_, err = c.Profile(ctx, false)
	require.NoError(t, err)

	today, err := time.Parse("2006-01-02", "2024-04-08")
	require.NoError(t, err)

	progress, err := c.Progress(today)
	require.NoError(t, err)
	assert.Equal(t, 14, progress.Weeks)
	assert.Equal(t, 0, progress.Days)
	assert.InDelta(t, 35.0, progress.Percentage, 1e-9)
}

func TestClient_LogoutInvalidatesCache(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "amina@example.com", "secret")
	require.NoError(t, err)
	_, err = c.Profile(ctx, false)
	require.NoError(t, err)

	require.NoError(t, c.Logout())
	// Logging out twice is fine.
	require.NoError(t, c.Logout())

	_, err = c.Session()
	require.ErrorIs(t, err, ErrNoSession)
	_, err = c.Profile(ctx, false)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestClient_ExpiredSession(t *testing.T) {
	t.Parallel()

	c, srv := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "amina@example.com", "secret")
	require.NoError(t, err)

	srv.unauthorized.Store(true)
	_, err = c.Profile(ctx, false)
	require.ErrorIs(t, err, ErrUnauthorized)
}
