package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// fakeVerifier maps raw tokens to user ids.
type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) Verify(raw string) (string, error) {
	return f.userID, f.err
}

func TestBearerAuth_NoHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/commands", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without Authorization header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/commands", nil)
	req.Header.Set("Authorization", "Basic abc123")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for non-Bearer scheme")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{err: errors.New("bad token")})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/commands", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{userID: "user-42"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/commands", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if got := GetUserIDFromContext(dummy.ctx); got != "user-42" {
		t.Errorf("GetUserIDFromContext = %q; want %q", got, "user-42")
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if got := GetUserIDFromContext(context.Background()); got != "" {
		t.Errorf("GetUserIDFromContext on empty context = %q; want empty", got)
	}
}
