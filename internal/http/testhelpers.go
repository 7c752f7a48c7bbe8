package httpx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
)

// discardLogger returns a logger that drops everything, keeping test output clean.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSessionResolver is a SessionResolver backed by a fixed map, for tests
// that exercise middleware and routing without a real session store.
type stubSessionResolver struct {
	sessions map[string]*domainauth.Session
}

func newStubSessionResolver(sessions ...*domainauth.Session) *stubSessionResolver {
	r := &stubSessionResolver{sessions: make(map[string]*domainauth.Session)}
	for _, s := range sessions {
		r.sessions[s.ID] = s
	}
	return r
}

func (r *stubSessionResolver) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, errors.New("session not found")
}

// withSessionCookie attaches the session cookie carrying the given id.
func withSessionCookie(req *http.Request, sessionID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	return req
}
