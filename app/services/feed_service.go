package services

import (
	"fmt"
	"sort"

	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

type scopeKind int

const (
	scopeGlobal scopeKind = iota
	scopeGroup
	scopeAuthor
	scopeFollowing
)

// Scope is a named filter over the post collection. Each scope has a
// stable key usable as a cache key prefix.
type Scope struct {
	kind scopeKind
	name string
}

// GlobalScope covers every post.
func GlobalScope() Scope { return Scope{kind: scopeGlobal} }

// GroupScope covers posts tagged to the group with the given slug.
func GroupScope(slug string) Scope { return Scope{kind: scopeGroup, name: slug} }

// AuthorScope covers posts authored by the given handle.
func AuthorScope(handle string) Scope { return Scope{kind: scopeAuthor, name: handle} }

// FollowingScope covers posts authored by anyone the viewer follows.
func FollowingScope(viewer string) Scope { return Scope{kind: scopeFollowing, name: viewer} }

// Key returns the scope's stable identity string.
func (s Scope) Key() string {
	switch s.kind {
	case scopeGroup:
		return "group:" + s.name
	case scopeAuthor:
		return "author:" + s.name
	case scopeFollowing:
		return "following:" + s.name
	default:
		return "global"
	}
}

// FeedService composes ordered, paginated feeds out of the entity store.
// It is read-only.
type FeedService struct {
	posts   repositories.PostRepository
	groups  repositories.GroupRepository
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	posts repositories.PostRepository,
	groups repositories.GroupRepository,
	users repositories.UserRepository,
	follows repositories.FollowRepository,
) *FeedService {
	return &FeedService{posts: posts, groups: groups, users: users, follows: follows}
}

// ComposeFeed resolves the scope to its candidate posts, applies the
// feed order (created-at descending, ID descending as the tiebreak) and
// returns the requested page. Unknown group slugs and author handles
// fail with ErrNotFound; a viewer who follows nobody gets an empty page.
func (s *FeedService) ComposeFeed(scope Scope, page int) (*Page, error) {
	var (
		posts []*models.Post
		err   error
	)

	switch scope.kind {
	case scopeGlobal:
		posts, err = s.posts.ListAll()
	case scopeGroup:
		if _, err := s.groups.GetBySlug(scope.name); err != nil {
			return nil, fmt.Errorf("group %q: %w", scope.name, err)
		}
		posts, err = s.posts.ListByGroup(scope.name)
	case scopeAuthor:
		if _, err := s.users.GetByHandle(scope.name); err != nil {
			return nil, fmt.Errorf("author %q: %w", scope.name, err)
		}
		posts, err = s.posts.ListByAuthor(scope.name)
	case scopeFollowing:
		if _, err := s.users.GetByHandle(scope.name); err != nil {
			return nil, fmt.Errorf("viewer %q: %w", scope.name, err)
		}
		var authors []string
		authors, err = s.follows.Following(scope.name)
		if err == nil && len(authors) > 0 {
			posts, err = s.posts.ListByAuthors(authors)
		}
	}
	if err != nil {
		return nil, err
	}

	orderPosts(posts)
	return Paginate(posts, PageSize, page), nil
}

// ListGroups returns every group, ordered by slug.
func (s *FeedService) ListGroups() ([]*models.Group, error) {
	groups, err := s.groups.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Slug < groups[j].Slug
	})
	return groups, nil
}

// orderPosts sorts into the feed's total order: newest first, higher ID
// first on equal timestamps.
func orderPosts(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
