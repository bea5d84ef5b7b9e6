package controllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/media"
	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories/mock"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// fixture wires every controller over mock repositories and a real
// feed cache, with the application's route shapes.
type fixture struct {
	users    *mock.UserRepository
	groups   *mock.GroupRepository
	posts    *mock.PostRepository
	comments *mock.CommentRepository
	follows  *mock.FollowRepository
	cache    *cache.FeedCache
	media    *media.Store
	mediaDir string
	router   *mux.Router

	postService *services.PostService
}

func newFixture(t *testing.T) *fixture {
	feedCache, err := cache.New(cache.DefaultTTL)
	require.NoError(t, err)
	t.Cleanup(feedCache.Close)

	mediaDir := filepath.Join(t.TempDir(), "media")
	mediaStore, err := media.NewStore(mediaDir)
	require.NoError(t, err)

	f := &fixture{
		users:    mock.NewUserRepository(),
		groups:   mock.NewGroupRepository(),
		posts:    mock.NewPostRepository(),
		comments: mock.NewCommentRepository(),
		follows:  mock.NewFollowRepository(),
		cache:    feedCache,
		media:    mediaStore,
		mediaDir: mediaDir,
	}

	feedService := services.NewFeedService(f.posts, f.groups, f.users, f.follows)
	f.postService = services.NewPostService(f.posts, f.comments, f.groups, f.follows, feedCache)
	commentService := services.NewCommentService(f.comments, f.posts)
	followService := services.NewFollowService(f.users, f.follows, feedCache)

	feedController := NewFeedController(feedService, feedCache)
	postController := NewPostController(f.postService, mediaStore)
	commentController := NewCommentController(commentService)
	followController := NewFollowController(followService)

	router := mux.NewRouter()
	router.StrictSlash(true)
	router.HandleFunc("/", feedController.Index).Methods("GET")
	router.HandleFunc("/follow/", feedController.FollowFeed).Methods("GET")
	router.HandleFunc("/group/", feedController.Groups).Methods("GET")
	router.HandleFunc("/group/{slug}/", feedController.GroupFeed).Methods("GET")
	router.HandleFunc("/profile/{handle}/", feedController.Profile).Methods("GET")
	router.HandleFunc("/create/", postController.Create).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/", postController.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/edit/", postController.Edit).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/delete/", postController.Delete).Methods("POST", "DELETE")
	router.HandleFunc("/posts/{id:[0-9]+}/comment/", commentController.Create).Methods("POST")
	router.HandleFunc("/profile/{handle}/follow/", followController.Follow).Methods("GET", "POST")
	router.HandleFunc("/profile/{handle}/unfollow/", followController.Unfollow).Methods("GET", "POST")
	f.router = router
	return f
}

func (f *fixture) addUser(t *testing.T, handle string) {
	require.NoError(t, f.users.Create(&models.User{Handle: handle, CreatedAt: time.Now()}))
}

func (f *fixture) addGroup(t *testing.T, slug string) {
	require.NoError(t, f.groups.Create(&models.Group{Title: "Group " + slug, Slug: slug}))
}

func mustPost(author, text string) *models.Post {
	post := &models.Post{Author: author, Text: text}
	post.BeforeCreate()
	return post
}

// do serves a request as the given viewer ("" for anonymous) and
// returns the recorder.
func (f *fixture) do(req *http.Request, viewer string) *httptest.ResponseRecorder {
	if viewer != "" {
		req = middleware.WithViewer(req, viewer)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
