package pebble

import (
	"github.com/cockroachdb/pebble/v2"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
	"github.com/pkg/errors"
)

// PebbleDBTransaction is a database transaction backed by an indexed Pebble
// batch. Reads through the transaction observe its own uncommitted writes
// on top of the committed state.
type PebbleDBTransaction struct {
	db       *PebbleDB
	batch    *pebble.Batch
	cursors  []*PebbleDBCursor
	isClosed bool
}

// Begin begins a new transaction.
func (db *PebbleDB) Begin() (database.Transaction, error) {
	return &PebbleDBTransaction{
		db:    db,
		batch: db.db.NewIndexedBatch(),
	}, nil
}

// close closes the cursors opened through the transaction, then its batch.
// Pebble requires a batch's iterators to be closed before the batch.
func (tx *PebbleDBTransaction) close() error {
	tx.isClosed = true
	for _, cursor := range tx.cursors {
		if cursor.isClosed {
			continue
		}
		err := cursor.Close()
		if err != nil {
			log.Warnf("Failed to close cursor: %s", err)
		}
	}
	tx.cursors = nil
	return errors.WithStack(tx.batch.Close())
}

// Commit commits whatever changes were made to the database within this transaction.
func (tx *PebbleDBTransaction) Commit() error {
	if tx.isClosed {
		return errors.New("cannot commit a closed transaction")
	}
	err := tx.batch.Commit(pebble.Sync)
	closeErr := tx.close()
	if err != nil {
		return errors.WithStack(err)
	}
	return closeErr
}

// Rollback rolls back whatever changes were made to the database within this transaction.
func (tx *PebbleDBTransaction) Rollback() error {
	if tx.isClosed {
		return errors.New("cannot rollback a closed transaction")
	}
	return tx.close()
}

// RollbackUnlessClosed rolls back changes that were made to the database within the transaction,
// unless the transaction had already been closed using either Rollback or Commit.
func (tx *PebbleDBTransaction) RollbackUnlessClosed() error {
	if tx.isClosed {
		return nil
	}
	return tx.Rollback()
}

// Put sets the value for the given key. It overwrites any previous value for that key.
func (tx *PebbleDBTransaction) Put(key *database.Key, value []byte) error {
	if tx.isClosed {
		return errors.New("cannot put into a closed transaction")
	}
	return errors.WithStack(tx.batch.Set(key.Bytes(), value, nil))
}

// Get gets the value for the given key. It returns ErrNotFound if the given key does not exist.
func (tx *PebbleDBTransaction) Get(key *database.Key) ([]byte, error) {
	if tx.isClosed {
		return nil, errors.New("cannot get from a closed transaction")
	}
	return get(tx.batch, key)
}

// Has returns true if the database contains the given key.
func (tx *PebbleDBTransaction) Has(key *database.Key) (bool, error) {
	if tx.isClosed {
		return false, errors.New("cannot has from a closed transaction")
	}
	return has(tx.batch, key)
}

// Delete deletes the value for the given key. Will not return an error if the key doesn't exist.
func (tx *PebbleDBTransaction) Delete(key *database.Key) error {
	if tx.isClosed {
		return errors.New("cannot delete from a closed transaction")
	}
	return errors.WithStack(tx.batch.Delete(key.Bytes(), nil))
}

// Cursor begins a new cursor over the given bucket. The cursor sees the
// writes made within the transaction up to its creation.
func (tx *PebbleDBTransaction) Cursor(bucket *database.Bucket) (database.Cursor, error) {
	if tx.isClosed {
		return nil, errors.New("cannot open a cursor from a closed transaction")
	}
	cursor, err := tx.db.newCursor(tx.batch, bucket)
	if err != nil {
		return nil, err
	}
	tx.cursors = append(tx.cursors, cursor)
	return cursor, nil
}
