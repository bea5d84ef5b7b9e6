package controllers

import (
	"net/http"

	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
)

// FollowController handles HTTP requests for follow edges
type FollowController struct {
	follows *services.FollowService
}

// NewFollowController creates a new FollowController
func NewFollowController(follows *services.FollowService) *FollowController {
	return &FollowController{follows: follows}
}

// Follow handles following the profile's author
func (fc *FollowController) Follow(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentViewer(r)
	if viewer == "" {
		sendError(w, r, services.ErrUnauthenticated)
		return
	}

	target := mux.Vars(r)["handle"]
	if err := fc.follows.Follow(viewer, target); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, map[string]string{"follower": viewer, "author": target})
		return
	}
	http.Redirect(w, r, "/profile/"+target+"/", http.StatusSeeOther)
}

// Unfollow handles unfollowing the profile's author
func (fc *FollowController) Unfollow(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentViewer(r)
	if viewer == "" {
		sendError(w, r, services.ErrUnauthenticated)
		return
	}

	target := mux.Vars(r)["handle"]
	if err := fc.follows.Unfollow(viewer, target); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/profile/"+target+"/", http.StatusSeeOther)
}
