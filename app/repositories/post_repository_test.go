package repositories

import (
	"testing"
	"time"

	"github.com/Ostashev/hw05-final/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, repo *BadgerPostRepository, author, group, text string) *models.Post {
	post := &models.Post{
		Author:    author,
		Group:     group,
		Text:      text,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(post))
	return post
}

func TestPostRepositoryCreateAndGet(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	post := createTestPost(t, repo, "alice", "", "first post")
	assert.Equal(t, 1, post.ID)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, "first post", got.Text)

	second := createTestPost(t, repo, "alice", "", "second post")
	assert.Equal(t, 2, second.ID)
}

func TestPostRepositoryGetMissing(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepositoryUpdate(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	post := createTestPost(t, repo, "alice", "", "original")

	post.Text = "edited"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)

	missing := &models.Post{ID: 99, Author: "alice", Text: "ghost"}
	assert.ErrorIs(t, repo.Update(missing), ErrNotFound)
}

func TestPostRepositoryDelete(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))
	post := createTestPost(t, repo, "alice", "", "doomed")

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(post.ID), ErrNotFound)
}

func TestPostRepositoryListFilters(t *testing.T) {
	repo := NewBadgerPostRepository(setupTestDB(t))

	createTestPost(t, repo, "alice", "gophers", "grouped")
	createTestPost(t, repo, "alice", "", "ungrouped")
	createTestPost(t, repo, "bob", "gophers", "bobs post")
	createTestPost(t, repo, "carol", "", "carols post")

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	grouped, err := repo.ListByGroup("gophers")
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
	for _, p := range grouped {
		assert.Equal(t, "gophers", p.Group)
	}

	byAlice, err := repo.ListByAuthor("alice")
	require.NoError(t, err)
	assert.Len(t, byAlice, 2)

	byEither, err := repo.ListByAuthors([]string{"bob", "carol"})
	require.NoError(t, err)
	assert.Len(t, byEither, 2)

	byNobody, err := repo.ListByAuthors(nil)
	require.NoError(t, err)
	assert.Empty(t, byNobody)
}
