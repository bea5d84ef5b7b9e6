package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ostashev/hw05-final/app/media"
	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	posts *services.PostService
	media *media.Store
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, mediaStore *media.Store) *PostController {
	return &PostController{posts: posts, media: mediaStore}
}

type postInput struct {
	Text  string `json:"text"`
	Group string `json:"group"`
}

// parsePostInput accepts JSON, form, or multipart bodies. The multipart
// form may carry an "image" file, which is stored before the post is
// created; parsePostInput returns its stored filename.
func (pc *PostController) parsePostInput(r *http.Request) (postInput, string, error) {
	var in postInput

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return in, "", err
		}
		return in, "", nil
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(media.MaxImageBytes); err != nil {
			return in, "", err
		}
		in.Text = r.FormValue("text")
		in.Group = r.FormValue("group")

		file, _, err := r.FormFile("image")
		if err == http.ErrMissingFile {
			return in, "", nil
		}
		if err != nil {
			return in, "", err
		}
		defer file.Close()
		image, err := pc.media.Save(file)
		if err != nil {
			return in, "", err
		}
		return in, image, nil
	default:
		if err := r.ParseForm(); err != nil {
			return in, "", err
		}
		in.Text = r.FormValue("text")
		in.Group = r.FormValue("group")
		return in, "", nil
	}
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	post, err := pc.posts.GetPost(id)
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentViewer(r)
	if viewer == "" {
		sendError(w, r, services.ErrUnauthenticated)
		return
	}

	in, image, err := pc.parsePostInput(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	post, err := pc.posts.CreatePost(viewer, in.Text, in.Group, image)
	if err != nil {
		// The attachment was stored before validation; don't orphan it.
		if image != "" {
			pc.media.Remove(image)
		}
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, post)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.Itoa(post.ID)+"/", http.StatusSeeOther)
}

// Edit handles editing an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	in, _, err := pc.parsePostInput(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	post, err := pc.posts.EditPost(middleware.CurrentViewer(r), id, in.Text, in.Group)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, post)
		return
	}
	http.Redirect(w, r, "/posts/"+strconv.Itoa(post.ID)+"/", http.StatusSeeOther)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	if err := pc.posts.DeletePost(middleware.CurrentViewer(r), id); err != nil {
		sendError(w, r, err)
		return
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
