package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/sessions"
)

// AuthController handles signup, login, and logout. Password change and
// reset flows are outside this system.
type AuthController struct {
	users *services.UserService
	store sessions.Store
}

// NewAuthController creates a new AuthController
func NewAuthController(users *services.UserService, store sessions.Store) *AuthController {
	return &AuthController{users: users, store: store}
}

type credentials struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

func parseCredentials(r *http.Request) (credentials, error) {
	var creds credentials
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&creds)
		return creds, err
	}
	if err := r.ParseForm(); err != nil {
		return creds, err
	}
	creds.Handle = r.FormValue("handle")
	creds.Password = r.FormValue("password")
	return creds, nil
}

func (ac *AuthController) startSession(w http.ResponseWriter, r *http.Request, handle string) error {
	session, _ := ac.store.Get(r, middleware.SessionName)
	session.Values["handle"] = handle
	return session.Save(r, w)
}

// SignUp registers a new user and logs them in.
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	user, err := ac.users.SignUp(creds.Handle, creds.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if err := ac.startSession(w, r, user.Handle); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, map[string]string{"handle": user.Handle})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login authenticates a returning user.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	user, err := ac.users.Authenticate(creds.Handle, creds.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if err := ac.startSession(w, r, user.Handle); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, map[string]string{"handle": user.Handle})
		return
	}
	next := r.URL.Query().Get("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout drops the viewer's session.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := ac.store.Get(r, middleware.SessionName)
	delete(session.Values, "handle")
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
