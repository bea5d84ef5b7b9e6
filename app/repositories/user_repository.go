package repositories

import (
	"github.com/Ostashev/hw05-final/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB. Users
// are keyed by handle, which enforces handle uniqueness at the store.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create stores a new user, failing with ErrConflict when the handle is taken.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := UserKeyPrefix + user.Handle
		exists, err := keyExists(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
}

// GetByHandle retrieves a user by handle
func (r *BadgerUserRepository) GetByHandle(handle string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, UserKeyPrefix+handle, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
