package repositories

import (
	"github.com/Ostashev/hw05-final/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerGroupRepository implements GroupRepository using BadgerDB.
// Groups are keyed by slug, which enforces slug uniqueness at the store.
type BadgerGroupRepository struct {
	db *badger.DB
}

// NewBadgerGroupRepository creates a new BadgerGroupRepository
func NewBadgerGroupRepository(db *badger.DB) *BadgerGroupRepository {
	return &BadgerGroupRepository{db: db}
}

// Create stores a new group, failing with ErrConflict when the slug is taken.
func (r *BadgerGroupRepository) Create(group *models.Group) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := GroupKeyPrefix + group.Slug
		exists, err := keyExists(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict
		}

		data, err := marshalEntity(group)
		if err != nil {
			return err
		}
		return txn.Set([]byte(key), data)
	})
}

// GetBySlug retrieves a group by slug
func (r *BadgerGroupRepository) GetBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, GroupKeyPrefix+slug, &group)
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves all groups
func (r *BadgerGroupRepository) List() ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(GroupKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var group models.Group
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &group)
			})
			if err != nil {
				return err
			}
			groups = append(groups, &group)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}
