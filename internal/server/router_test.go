package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titans986/waiting-list-site/internal/config"
	"github.com/titans986/waiting-list-site/internal/landing"
	"github.com/titans986/waiting-list-site/internal/waitlist"
)

type memStore struct {
	mu     sync.Mutex
	emails []string
}

func (s *memStore) Record(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return nil
}

func (s *memStore) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.emails...)
}

func newTestServer(t *testing.T, store waitlist.Store) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"https://site.example"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
	}
	h, err := NewRouter(cfg, logger, store)
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestRouter_RegisterGet(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/register", nil)
	resp, body := do(t, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST", resp.Header.Get("Allow"))
	assert.Equal(t, "Method GET Not Allowed", body)
}

func TestRouter_RegisterPost(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"with email", `{"email":"a@b.com"}`, "a@b.com"},
		{"without email", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			srv := newTestServer(t, store)

			req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, body := do(t, req)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"message":"Email registered successfully!"}`, body)
			assert.Equal(t, []string{tt.want}, store.recorded())
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", "https://site.example", "https://site.example"},
		{"foreign origin", "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &memStore{})

			req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/register", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			resp, body := do(t, req)

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, "POST", resp.Header.Get("Allow"))
			assert.Equal(t, "Method OPTIONS Not Allowed", body)
			assert.Equal(t, tt.wantOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRouter_UnknownMethods(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	for _, m := range []string{"PROPFIND", "PURGE", "MKCOL"} {
		t.Run(m, func(t *testing.T) {
			req, _ := http.NewRequest(m, srv.URL+"/api/register", nil)
			resp, body := do(t, req)

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, "POST", resp.Header.Get("Allow"))
			assert.Equal(t, "Method "+m+" Not Allowed", body)
		})
	}
}

func TestRouter_WrongMethodElsewhere(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/health", nil)
	resp, body := do(t, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEqual(t, "POST", resp.Header.Get("Allow"))
	assert.Equal(t, "Method Not Allowed\n", body)
}

func TestRouter_PlainOptionsIsNotAllowed(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/register", nil)
	resp, body := do(t, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method OPTIONS Not Allowed", body)
}

func TestRouter_LandingAndAssets(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	for _, tt := range []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", "Be the First to Know"},
		{"/static/styles.css", "text/css; charset=utf-8", ".success-message"},
		{"/static/js/waitlist.js", "", "application/json"},
		{"/health", "application/json", `{"status":"ok"}`},
	} {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+tt.path, nil)
			resp, body := do(t, req)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			}
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestRouter_FormSubmitEndToEnd(t *testing.T) {
	store := &memStore{}
	srv := newTestServer(t, store)
	logger, hook := test.NewNullLogger()

	form := landing.NewForm(waitlist.NewClient(srv.URL, srv.Client()), logger)

	form.Submit(context.Background())
	assert.Empty(t, store.recorded())

	form.SetEmail("x@y.com")
	form.Submit(context.Background())

	assert.True(t, form.Submitted())
	assert.Equal(t, "", form.Email())
	assert.Equal(t, []string{"x@y.com"}, store.recorded())
	assert.Empty(t, hook.AllEntries())
}
