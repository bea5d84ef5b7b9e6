package models

import "time"

// User is a registered author identified by a unique, URL-safe handle.
type User struct {
	Handle       string    `json:"handle" validate:"required,min=2,max=50,urlsafe"`
	PasswordHash []byte    `json:"password_hash,omitempty" validate:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Group is a named community posts can be tagged to. The slug is the
// unique, URL-safe identifier and must not change once posts reference it.
type Group struct {
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Slug        string    `json:"slug" validate:"required,min=1,max=100,urlsafe"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	CreatedAt   time.Time `json:"created_at"`
}

// Post is authored by exactly one user and optionally tagged to a group.
// An empty Group means the post is ungrouped. Image holds the stored
// media filename of the optional attachment.
type Post struct {
	ID        int        `json:"id" validate:"gte=0"`
	Author    string     `json:"author" validate:"required"`
	Group     string     `json:"group,omitempty"`
	Text      string     `json:"text" validate:"required,max=10000"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Comments  []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment is attached to exactly one post. Comments are write-once:
// there are no edit or delete operations for them.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"gt=0"`
	Author    string    `json:"author" validate:"required"`
	Text      string    `json:"text" validate:"required,max=3000"`
	CreatedAt time.Time `json:"created_at"`
}

// Follow is a directed edge from a follower to an author. The pair is
// unique; following yourself is allowed.
type Follow struct {
	Follower  string    `json:"follower" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
