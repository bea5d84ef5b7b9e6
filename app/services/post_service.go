package services

import (
	"fmt"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

// PostService is the write path for posts: it validates, enforces
// authorship, persists, and invalidates the feed cache for every scope a
// change could affect. The store write always happens before the
// invalidation.
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	groups   repositories.GroupRepository
	follows  repositories.FollowRepository
	cache    *cache.FeedCache
}

// NewPostService creates a new PostService
func NewPostService(
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	groups repositories.GroupRepository,
	follows repositories.FollowRepository,
	feedCache *cache.FeedCache,
) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		groups:   groups,
		follows:  follows,
		cache:    feedCache,
	}
}

// CreatePost creates a post for the given author. The group slug is
// optional; a non-empty slug must name an existing group. The image is
// the stored media filename of an already-saved attachment, or empty.
func (s *PostService) CreatePost(author, text, groupSlug, image string) (*models.Post, error) {
	if author == "" {
		return nil, ErrUnauthenticated
	}
	if groupSlug != "" {
		if _, err := s.groups.GetBySlug(groupSlug); err != nil {
			return nil, fmt.Errorf("group %q: %w", groupSlug, err)
		}
	}

	post := &models.Post{
		Author: author,
		Group:  groupSlug,
		Text:   text,
		Image:  image,
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	s.invalidateScopes(post)
	return post, nil
}

// GetPost retrieves a post with its comments attached.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	post.Comments = comments
	return post, nil
}

// EditPost replaces the post's text and group. Only the author may edit.
// Edits do not invalidate the cache: edited text becomes visible when
// the affected entries expire or are invalidated by another write.
func (s *PostService) EditPost(editor string, id int, text, groupSlug string) (*models.Post, error) {
	if editor == "" {
		return nil, ErrUnauthenticated
	}
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.Author != editor {
		return nil, ErrForbidden
	}
	if groupSlug != "" && groupSlug != post.Group {
		if _, err := s.groups.GetBySlug(groupSlug); err != nil {
			return nil, fmt.Errorf("group %q: %w", groupSlug, err)
		}
	}

	post.Text = text
	post.Group = groupSlug
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its comments. Only the author may
// delete. The cascade deletes comments before the post so no comment is
// ever left without its post.
func (s *PostService) DeletePost(editor string, id int) error {
	if editor == "" {
		return ErrUnauthenticated
	}
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post.Author != editor {
		return ErrForbidden
	}

	if err := s.comments.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := s.posts.Delete(id); err != nil {
		return err
	}
	s.invalidateScopes(post)
	return nil
}

// invalidateScopes drops the cached feeds a membership change to this
// post affects: the global feed, the post's group and author feeds, and
// the follow feed of everyone following the author. When the follower
// set cannot be read the whole cache is flushed instead of risking a
// missed key.
func (s *PostService) invalidateScopes(post *models.Post) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(GlobalScope().Key())
	if post.Group != "" {
		s.cache.Invalidate(GroupScope(post.Group).Key())
	}
	s.cache.Invalidate(AuthorScope(post.Author).Key())

	followers, err := s.follows.Followers(post.Author)
	if err != nil {
		s.cache.InvalidateAll()
		return
	}
	for _, follower := range followers {
		s.cache.Invalidate(FollowingScope(follower).Key())
	}
}
