package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the viewer's session.
const SessionName = "yatube_session"

type contextKey string

const viewerKey contextKey = "viewer"

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Viewer resolves the session cookie to the viewer's handle and puts it
// in the request context. An empty handle means anonymous.
func Viewer(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, SessionName)
			handle, _ := session.Values["handle"].(string)
			ctx := context.WithValue(r.Context(), viewerKey, handle)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentViewer returns the authenticated viewer's handle, or "" for an
// anonymous request.
func CurrentViewer(r *http.Request) string {
	handle, _ := r.Context().Value(viewerKey).(string)
	return handle
}

// WithViewer returns a request authenticated as the given handle.
// Intended for tests.
func WithViewer(r *http.Request, handle string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), viewerKey, handle))
}
