package pebble

import (
	"bytes"

	"github.com/cockroachdb/pebble/v2"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
	"github.com/pkg/errors"
)

// PebbleDBCursor is a thin wrapper around Pebble iterators.
type PebbleDBCursor struct {
	db       *PebbleDB
	iterator *pebble.Iterator
	bucket   *database.Bucket

	started  bool
	isClosed bool
}

// BytesPrefix returns iterator options bounding iteration to the keys that
// start with prefix.
func BytesPrefix(prefix []byte) *pebble.IterOptions {
	options := &pebble.IterOptions{LowerBound: prefix}
	// The upper bound is the prefix with its last non-0xff byte incremented.
	// A prefix made only of 0xff bytes has no upper bound.
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			upperBound := append([]byte(nil), prefix[:i+1]...)
			upperBound[i]++
			options.UpperBound = upperBound
			break
		}
	}
	return options
}

// Cursor begins a new cursor over the given bucket.
func (db *PebbleDB) Cursor(bucket *database.Bucket) (database.Cursor, error) {
	return db.newCursor(db.db, bucket)
}

func (db *PebbleDB) newCursor(reader pebble.Reader, bucket *database.Bucket) (*PebbleDBCursor, error) {
	iterator, err := reader.NewIter(BytesPrefix(bucket.Path()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create an iterator over %s", bucket)
	}
	cursor := &PebbleDBCursor{
		db:       db,
		iterator: iterator,
		bucket:   bucket,
	}

	db.openCursorsLock.Lock()
	defer db.openCursorsLock.Unlock()
	db.openCursors[cursor] = struct{}{}
	return cursor, nil
}

// Next moves the iterator to the next key/value pair. It returns whether the iterator is exhausted.
// Panics if the cursor is closed.
func (c *PebbleDBCursor) Next() bool {
	if c.isClosed {
		panic("cannot call next on a closed cursor")
	}
	if !c.started {
		c.started = true
		return c.iterator.First()
	}
	return c.iterator.Next()
}

// First moves the iterator to the first key/value pair. It returns false if such a pair does not exist.
// Panics if the cursor is closed.
func (c *PebbleDBCursor) First() bool {
	if c.isClosed {
		panic("cannot call First on a closed cursor")
	}
	c.started = true
	return c.iterator.First()
}

// Seek moves the iterator to the first key/value pair whose key is greater
// than or equal to the given key. It returns ErrNotFound if such pair does not exist.
func (c *PebbleDBCursor) Seek(key *database.Key) error {
	if c.isClosed {
		return errors.New("cannot seek a closed cursor")
	}
	c.started = true
	if !c.iterator.SeekGE(key.Bytes()) {
		return errors.Wrapf(database.ErrNotFound, "no key found for seek %s", key)
	}
	return nil
}

// Key returns the key of the current key/value pair, or ErrNotFound if done.
// The returned key is re-rooted under the bucket the cursor was opened with.
func (c *PebbleDBCursor) Key() (*database.Key, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the key of a closed cursor")
	}
	if !c.iterator.Valid() {
		return nil, errors.Wrapf(database.ErrNotFound, "cannot get the key of an exhausted cursor")
	}
	suffix := bytes.TrimPrefix(c.iterator.Key(), c.bucket.Path())
	return c.bucket.Key(append([]byte(nil), suffix...)), nil
}

// Value returns the value of the current key/value pair, or ErrNotFound if done.
// The returned slice is only valid until the cursor moves.
func (c *PebbleDBCursor) Value() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the value of a closed cursor")
	}
	if !c.iterator.Valid() {
		return nil, errors.Wrapf(database.ErrNotFound, "cannot get the value of an exhausted cursor")
	}
	return c.iterator.Value(), nil
}

// Close releases associated resources.
func (c *PebbleDBCursor) Close() error {
	if c.isClosed {
		return errors.New("cannot close an already closed cursor")
	}
	c.isClosed = true

	c.db.openCursorsLock.Lock()
	delete(c.db.openCursors, c)
	c.db.openCursorsLock.Unlock()

	return errors.WithStack(c.iterator.Close())
}
