package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ostashev/hw05-final/app/media"
	"github.com/Ostashev/hw05-final/app/repositories"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/go-playground/validator/v10"
)

// LoginPath is where browser clients are redirected when they hit a
// protected route without a session.
const LoginPath = "/auth/login/"

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// wantsJSON reports whether the client asked for a JSON response.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// sendError translates a service error into the matching HTTP outcome.
// Unauthenticated browser clients get redirected to the login flow
// instead of a bare status code.
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		})
	case errors.Is(err, services.ErrUnauthenticated):
		if wantsJSON(r) {
			sendJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		http.Redirect(w, r, LoginPath+"?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
	case errors.Is(err, services.ErrForbidden):
		sendJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		sendJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrWeakPassword):
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		sendJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repositories.ErrConflict):
		sendJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// pageNumber parses the "page" query parameter. Absent or non-numeric
// values default to page 1; range clamping happens in the paginator.
func pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
