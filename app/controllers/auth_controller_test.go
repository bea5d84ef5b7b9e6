package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/repositories/mock"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*mux.Router, *mock.UserRepository) {
	users := mock.NewUserRepository()
	store := sessions.NewCookieStore([]byte("test-session-key"))
	controller := NewAuthController(services.NewUserService(users), store)

	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Use(middleware.Viewer(store))
	router.HandleFunc("/auth/signup/", controller.SignUp).Methods("POST")
	router.HandleFunc("/auth/login/", controller.Login).Methods("POST")
	router.HandleFunc("/auth/logout/", controller.Logout).Methods("POST")

	// Probe route exposing the resolved viewer.
	router.HandleFunc("/whoami/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.CurrentViewer(r)))
	}).Methods("GET")

	return router, users
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSignUpCreatesSession(t *testing.T) {
	router, users := setupAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", url.Values{
		"handle":   {"alice"},
		"password": {"s3cret-pass"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	_, err := users.GetByHandle("alice")
	require.NoError(t, err)

	// The session cookie identifies alice on the next request.
	whoami := httptest.NewRequest("GET", "/whoami/", nil)
	for _, c := range rec.Result().Cookies() {
		whoami.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, whoami)
	assert.Equal(t, "alice", rec2.Body.String())
}

func TestSignUpDuplicateHandle(t *testing.T) {
	router, _ := setupAuthRouter(t)

	creds := url.Values{"handle": {"alice"}, "password": {"s3cret-pass"}}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", creds))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", creds))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUpShortPassword(t *testing.T) {
	router, users := setupAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", url.Values{
		"handle":   {"alice"},
		"password": {"short"},
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := users.GetByHandle("alice")
	assert.Error(t, err)
}

func TestLoginAndLogout(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", url.Values{
		"handle":   {"alice"},
		"password": {"s3cret-pass"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// Wrong password.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/login/", url.Values{
		"handle":   {"alice"},
		"password": {"wrong"},
	}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct login.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/login/", url.Values{
		"handle":   {"alice"},
		"password": {"s3cret-pass"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Logout clears the session.
	logout := formRequest("/auth/logout/", url.Values{})
	for _, c := range cookies {
		logout.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, logout)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	whoami := httptest.NewRequest("GET", "/whoami/", nil)
	for _, c := range rec.Result().Cookies() {
		whoami.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, whoami)
	assert.Equal(t, "", rec2.Body.String())
}

func TestLoginRedirectsToNext(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/signup/", url.Values{
		"handle":   {"alice"},
		"password": {"s3cret-pass"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, formRequest("/auth/login/?next=%2Fcreate%2F", url.Values{
		"handle":   {"alice"},
		"password": {"s3cret-pass"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/create/", rec.Header().Get("Location"))
}
