package routes

import (
	"net/http"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/controllers"
	"github.com/Ostashev/hw05-final/app/media"
	"github.com/Ostashev/hw05-final/app/middleware"
	"github.com/Ostashev/hw05-final/app/repositories"
	"github.com/Ostashev/hw05-final/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// Setup wires repositories, services, and controllers over the given
// database and returns the application's router.
func Setup(db *badger.DB, mediaStore *media.Store, feedCache *cache.FeedCache, sessionKey []byte) *mux.Router {
	users := repositories.NewBadgerUserRepository(db)
	groups := repositories.NewBadgerGroupRepository(db)
	posts := repositories.NewBadgerPostRepository(db)
	comments := repositories.NewBadgerCommentRepository(db)
	follows := repositories.NewBadgerFollowRepository(db)

	sessionStore := sessions.NewCookieStore(sessionKey)

	feedService := services.NewFeedService(posts, groups, users, follows)
	postService := services.NewPostService(posts, comments, groups, follows, feedCache)
	commentService := services.NewCommentService(comments, posts)
	followService := services.NewFollowService(users, follows, feedCache)
	userService := services.NewUserService(users)

	feedController := controllers.NewFeedController(feedService, feedCache)
	postController := controllers.NewPostController(postService, mediaStore)
	commentController := controllers.NewCommentController(commentService)
	followController := controllers.NewFollowController(followService)
	authController := controllers.NewAuthController(userService, sessionStore)

	router := mux.NewRouter()
	router.StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Viewer(sessionStore))

	// Feeds
	router.HandleFunc("/", feedController.Index).Methods("GET")
	router.HandleFunc("/follow/", feedController.FollowFeed).Methods("GET")
	router.HandleFunc("/group/", feedController.Groups).Methods("GET")
	router.HandleFunc("/group/{slug}/", feedController.GroupFeed).Methods("GET")
	router.HandleFunc("/profile/{handle}/", feedController.Profile).Methods("GET")

	// Posts
	router.HandleFunc("/create/", postController.Create).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/", postController.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/edit/", postController.Edit).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/delete/", postController.Delete).Methods("POST", "DELETE")
	router.HandleFunc("/posts/{id:[0-9]+}/comment/", commentController.Create).Methods("POST")

	// Follow edges. The observed system exposes these as links, so GET
	// is accepted alongside POST.
	router.HandleFunc("/profile/{handle}/follow/", followController.Follow).Methods("GET", "POST")
	router.HandleFunc("/profile/{handle}/unfollow/", followController.Unfollow).Methods("GET", "POST")

	// Auth
	router.HandleFunc("/auth/signup/", authController.SignUp).Methods("POST")
	router.HandleFunc("/auth/login/", authController.Login).Methods("POST")
	router.HandleFunc("/auth/logout/", authController.Logout).Methods("POST")

	// Stored post images
	router.PathPrefix("/media/").Handler(http.StripPrefix("/media/", mediaStore.Handler()))

	// Any unmatched path yields a generic not-found outcome.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})

	return router
}
