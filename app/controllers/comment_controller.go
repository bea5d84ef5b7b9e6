package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Create handles adding a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentViewer(r)
	if viewer == "" {
		sendError(w, r, services.ErrUnauthenticated)
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	var text string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var in struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			sendError(w, r, err)
			return
		}
		text = in.Text
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, err)
			return
		}
		text = r.FormValue("text")
	}

	comment, err := cc.comments.CreateComment(viewer, postID, text)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, comment)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.Itoa(postID)+"/", http.StatusSeeOther)
}
