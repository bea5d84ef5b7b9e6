package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := setupTestDB(t)

	var first, second int
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		var err error
		first, err = getNextID(txn, PostSeqKey)
		return err
	}))
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		var err error
		second, err = getNextID(txn, PostSeqKey)
		return err
	}))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		_, err := getNextID(txn, PostSeqKey)
		return err
	}))

	var commentID int
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		var err error
		commentID, err = getNextID(txn, CommentSeqKey)
		return err
	}))
	assert.Equal(t, 1, commentID)
}
