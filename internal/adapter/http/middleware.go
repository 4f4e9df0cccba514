package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"nutriplan/internal/app"
	"nutriplan/internal/domain"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	requestIDContextKey contextKey = "request_id"
)

// localUsername owns all history when authentication is disabled.
const localUsername = "local"

var errNoCredentials = errors.New("no credentials")

// currentUser resolves the caller from the session cookie, or from the
// forward auth header when the server trusts its proxy.
func (s *Server) currentUser(r *http.Request) (*domain.User, error) {
	ctx := r.Context()
	if s.disableAuth {
		return s.authSvc.ValidateForwardAuth(ctx, localUsername)
	}

	// Authelia-style forward auth header first
	if remoteUser := r.Header.Get("Remote-User"); s.forwardAuth && remoteUser != "" {
		user, err := s.authSvc.ValidateForwardAuth(ctx, remoteUser)
		if err == nil && user != nil {
			return user, nil
		}
	}

	cookie, err := r.Cookie("session")
	if err != nil {
		return nil, errNoCredentials
	}
	return s.authSvc.ValidateSession(ctx, cookie.Value, r.UserAgent())
}

func isUnauthorized(err error) bool {
	return errors.Is(err, errNoCredentials) ||
		errors.Is(err, app.ErrSessionNotFound) ||
		errors.Is(err, app.ErrSessionExpired) ||
		errors.Is(err, app.ErrUserNotFound)
}

// authMiddleware rejects requests without a valid session or forward auth
// header.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.currentUser(r)
		if isUnauthorized(err) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Printf("auth: %v [%s]", err, requestID(r.Context()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalUser attaches the caller when credentials are present and lets
// anonymous requests through unchanged.
func (s *Server) optionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.currentUser(r)
		if err != nil {
			if !isUnauthorized(err) {
				log.Printf("auth: %v [%s]", err, requestID(r.Context()))
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok && user != nil
}

// requestID returns the ID assigned by loggingMiddleware, or "-" outside it.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return "-"
}

// loggingMiddleware logs one line per request and tags it with a request ID,
// reusing the caller's X-Request-ID when present.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r.WithContext(ctx))

		log.Printf("%s %s %d %v [%s]", r.Method, r.URL.Path, wrapper.statusCode, time.Since(start), reqID)
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
