package services

import (
	"fmt"

	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

// CommentService is the write path for comments. Comments are
// write-once: there is deliberately no edit or delete operation here.
// Comments do not change any scope's post membership, so creating one
// never touches the feed cache.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(author string, postID int, text string) (*models.Comment, error) {
	if author == "" {
		return nil, ErrUnauthenticated
	}
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}

	comment := &models.Comment{
		PostID: postID,
		Author: author,
		Text:   text,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments attached to a post.
func (s *CommentService) ListComments(postID int) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}
	return s.comments.ListByPost(postID)
}
