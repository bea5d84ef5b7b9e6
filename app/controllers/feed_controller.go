package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
)

// FeedController serves the read side: every feed endpoint resolves to
// one scope and one page, rendered once and memoized in the feed cache.
type FeedController struct {
	feeds     *services.FeedService
	feedCache *cache.FeedCache
}

// NewFeedController creates a new FeedController
func NewFeedController(feeds *services.FeedService, feedCache *cache.FeedCache) *FeedController {
	return &FeedController{feeds: feeds, feedCache: feedCache}
}

// Index handles the global feed
func (fc *FeedController) Index(w http.ResponseWriter, r *http.Request) {
	fc.serveFeed(w, r, services.GlobalScope())
}

// Groups handles the group index
func (fc *FeedController) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := fc.feeds.ListGroups()
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// GroupFeed handles a group's feed
func (fc *FeedController) GroupFeed(w http.ResponseWriter, r *http.Request) {
	fc.serveFeed(w, r, services.GroupScope(mux.Vars(r)["slug"]))
}

// Profile handles an author's feed
func (fc *FeedController) Profile(w http.ResponseWriter, r *http.Request) {
	fc.serveFeed(w, r, services.AuthorScope(mux.Vars(r)["handle"]))
}

// FollowFeed handles the viewer's followed-authors feed
func (fc *FeedController) FollowFeed(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.CurrentViewer(r)
	if viewer == "" {
		sendError(w, r, services.ErrUnauthenticated)
		return
	}
	fc.serveFeed(w, r, services.FollowingScope(viewer))
}

type feedResponse struct {
	Scope string         `json:"scope"`
	Page  *services.Page `json:"page"`
}

func (fc *FeedController) serveFeed(w http.ResponseWriter, r *http.Request, scope services.Scope) {
	page := pageNumber(r)

	body, err := fc.feedCache.GetOrCompute(scope.Key(), page, func() ([]byte, error) {
		composed, err := fc.feeds.ComposeFeed(scope, page)
		if err != nil {
			return nil, err
		}
		return json.Marshal(feedResponse{Scope: scope.Key(), Page: composed})
	})
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
