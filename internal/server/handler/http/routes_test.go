package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinyakov/CmdKeeper/internal/models"
	handler "github.com/atinyakov/CmdKeeper/internal/server/handler/http"
	"go.uber.org/zap"
)

// staticVerifier accepts exactly one token.
type staticVerifier struct {
	token  string
	userID string
}

func (v *staticVerifier) Verify(raw string) (string, error) {
	if raw != v.token {
		return "", errors.New("invalid token")
	}
	return v.userID, nil
}

func newTestRouter(commands *fakeCommandService) http.Handler {
	return handler.NewRouter(
		&handler.AuthHandler{AuthService: &fakeAuthRouterService{}},
		&handler.CommandHandler{CommandService: commands},
		&staticVerifier{token: "good-token", userID: "u1"},
		zap.NewNop(),
	)
}

func TestRouter_CommandsRequireAuth(t *testing.T) {
	router := newTestRouter(&fakeCommandService{})

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/commands"},
		{http.MethodGet, "/commands/category/Files"},
		{http.MethodPost, "/commands"},
		{http.MethodDelete, "/commands/abc"},
	}
	for _, tgt := range targets {
		t.Run(tgt.method+" "+tgt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tgt.method, tgt.path, nil)
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRouter_AuthedListReachesHandler(t *testing.T) {
	fake := &fakeCommandService{listResult: nil}
	router := newTestRouter(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/commands", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if fake.receivedOwner != "u1" {
		t.Errorf("owner from token = %q; want %q", fake.receivedOwner, "u1")
	}
}

func TestRouter_RejectsNonJSONContentType(t *testing.T) {
	router := newTestRouter(&fakeCommandService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("username=carol"))
	req.Header.Set("Content-Type", "text/plain")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusUnsupportedMediaType)
	}
}

// fakeAuthRouterService satisfies handler.AuthService for router wiring tests.
type fakeAuthRouterService struct{}

func (f *fakeAuthRouterService) Register(ctx context.Context, username, password string) (*models.User, error) {
	return &models.User{ID: "uid", Username: username}, nil
}

func (f *fakeAuthRouterService) Login(ctx context.Context, username, password string) (string, error) {
	return "token", nil
}
