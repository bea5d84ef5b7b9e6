// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"sort"
	"sync"

	"github.com/Ostashev/hw05-final/app/models"
	"github.com/Ostashev/hw05-final/app/repositories"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Handle]; exists {
		return repositories.ErrConflict
	}
	m.users[user.Handle] = user
	return nil
}

func (m *UserRepository) GetByHandle(handle string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, exists := m.users[handle]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type GroupRepository struct {
	mu     sync.RWMutex
	groups map[string]*models.Group
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{groups: make(map[string]*models.Group)}
}

func (m *GroupRepository) Create(group *models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.groups[group.Slug]; exists {
		return repositories.ErrConflict
	}
	m.groups[group.Slug] = group
	return nil
}

func (m *GroupRepository) GetBySlug(slug string) (*models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	group, exists := m.groups[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return group, nil
}

func (m *GroupRepository) List() ([]*models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := make([]*models.Group, 0, len(m.groups))
	for _, g := range m.groups {
		groups = append(groups, g)
	}
	return groups, nil
}

type PostRepository struct {
	mu     sync.RWMutex
	posts  map[int]*models.Post
	nextID int
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[int]*models.Post), nextID: 1}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = m.nextID
	m.nextID++
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) ListAll() ([]*models.Post, error) {
	return m.list(func(*models.Post) bool { return true })
}

func (m *PostRepository) ListByGroup(slug string) ([]*models.Post, error) {
	return m.list(func(p *models.Post) bool { return p.Group == slug })
}

func (m *PostRepository) ListByAuthor(handle string) ([]*models.Post, error) {
	return m.list(func(p *models.Post) bool { return p.Author == handle })
}

func (m *PostRepository) ListByAuthors(handles []string) ([]*models.Post, error) {
	set := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		set[h] = struct{}{}
	}
	return m.list(func(p *models.Post) bool {
		_, ok := set[p.Author]
		return ok
	})
}

func (m *PostRepository) list(keep func(*models.Post) bool) ([]*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var posts []*models.Post
	for _, p := range m.posts {
		if keep(p) {
			copied := *p
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

type CommentRepository struct {
	mu       sync.RWMutex
	comments map[int]*models.Comment
	nextID   int
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[int]*models.Comment), nextID: 1}
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment.ID = m.nextID
	m.nextID++
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			copied := *c
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (m *CommentRepository) DeleteByPost(postID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.comments {
		if c.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}

type FollowRepository struct {
	mu    sync.RWMutex
	edges map[[2]string]*models.Follow
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{edges: make(map[[2]string]*models.Follow)}
}

func (m *FollowRepository) Create(follow *models.Follow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{follow.Follower, follow.Author}
	if _, exists := m.edges[key]; exists {
		return repositories.ErrConflict
	}
	m.edges[key] = follow
	return nil
}

func (m *FollowRepository) Delete(follower, author string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.edges, [2]string{follower, author})
	return nil
}

func (m *FollowRepository) Exists(follower, author string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.edges[[2]string{follower, author}]
	return exists, nil
}

func (m *FollowRepository) Following(follower string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var authors []string
	for key := range m.edges {
		if key[0] == follower {
			authors = append(authors, key[1])
		}
	}
	return authors, nil
}

func (m *FollowRepository) Followers(author string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var followers []string
	for key := range m.edges {
		if key[1] == author {
			followers = append(followers, key[0])
		}
	}
	return followers, nil
}
