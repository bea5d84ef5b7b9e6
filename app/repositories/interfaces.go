package repositories

import "github.com/Ostashev/hw05-final/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByHandle(handle string) (*models.User, error)
}

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	Create(group *models.Group) error
	GetBySlug(slug string) (*models.Group, error)
	List() ([]*models.Group, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	ListAll() ([]*models.Post, error)
	ListByGroup(slug string) ([]*models.Post, error)
	ListByAuthor(handle string) ([]*models.Post, error)
	ListByAuthors(handles []string) ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID int) ([]*models.Comment, error)
	DeleteByPost(postID int) error
}

// FollowRepository defines the interface for follow-edge data access
type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(follower, author string) error
	Exists(follower, author string) (bool, error)
	Following(follower string) ([]string, error)
	Followers(author string) ([]string, error)
}
