package repositories

import (
	"fmt"

	"github.com/Ostashev/hw05-final/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func postKey(id int) string {
	return fmt.Sprintf("%s%d", PostKeyPrefix, id)
}

// Create assigns the next ID and stores the post.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set([]byte(postKey(post.ID)), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update overwrites an existing post, failing with ErrNotFound when absent.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)
		exists, err := keyExists(txn, key)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
}

// Delete removes a post, failing with ErrNotFound when absent.
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		exists, err := keyExists(txn, key)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return txn.Delete([]byte(key))
	})
}

// ListAll retrieves every post, in no particular order.
func (r *BadgerPostRepository) ListAll() ([]*models.Post, error) {
	return r.list(func(*models.Post) bool { return true })
}

// ListByGroup retrieves the posts tagged to the given group slug.
func (r *BadgerPostRepository) ListByGroup(slug string) ([]*models.Post, error) {
	return r.list(func(p *models.Post) bool { return p.Group == slug })
}

// ListByAuthor retrieves the posts authored by the given handle.
func (r *BadgerPostRepository) ListByAuthor(handle string) ([]*models.Post, error) {
	return r.list(func(p *models.Post) bool { return p.Author == handle })
}

// ListByAuthors retrieves the posts authored by any of the given handles.
func (r *BadgerPostRepository) ListByAuthors(handles []string) ([]*models.Post, error) {
	set := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		set[h] = struct{}{}
	}
	return r.list(func(p *models.Post) bool {
		_, ok := set[p.Author]
		return ok
	})
}

func (r *BadgerPostRepository) list(keep func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if keep(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
