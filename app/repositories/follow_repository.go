package repositories

import (
	"strings"

	"github.com/Ostashev/hw05-final/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerFollowRepository implements FollowRepository using BadgerDB.
// Edges are keyed "follow:<follower>:<author>", so the unique-pair
// constraint falls out of the key itself. Handles are URL-safe and can
// never contain a colon.
type BadgerFollowRepository struct {
	db *badger.DB
}

// NewBadgerFollowRepository creates a new BadgerFollowRepository
func NewBadgerFollowRepository(db *badger.DB) *BadgerFollowRepository {
	return &BadgerFollowRepository{db: db}
}

func followKey(follower, author string) string {
	return FollowKeyPrefix + follower + ":" + author
}

// Create stores a follow edge, failing with ErrConflict when the pair
// already exists.
func (r *BadgerFollowRepository) Create(follow *models.Follow) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := followKey(follow.Follower, follow.Author)
		exists, err := keyExists(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict
		}

		data, err := marshalEntity(follow)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
}

// Delete removes a follow edge. Deleting a missing edge succeeds:
// the contract is "ensure absent".
func (r *BadgerFollowRepository) Delete(follower, author string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(followKey(follower, author)))
	})
}

// Exists reports whether follower follows author.
func (r *BadgerFollowRepository) Exists(follower, author string) (bool, error) {
	var exists bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		exists, err = keyExists(txn, followKey(follower, author))
		return err
	})
	return exists, err
}

// Following returns the handles the given follower follows.
func (r *BadgerFollowRepository) Following(follower string) ([]string, error) {
	var authors []string
	prefix := []byte(FollowKeyPrefix + follower + ":")
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			authors = append(authors, key[len(prefix):])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Followers returns the handles that follow the given author.
func (r *BadgerFollowRepository) Followers(author string) ([]string, error) {
	var followers []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(FollowKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			parts := strings.SplitN(key[len(prefix):], ":", 2)
			if len(parts) == 2 && parts[1] == author {
				followers = append(followers, parts[0])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return followers, nil
}
