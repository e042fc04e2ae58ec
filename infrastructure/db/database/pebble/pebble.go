package pebble

import (
	"context"
	"os"
	"sync"

	"github.com/cockroachdb/pebble/v2"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
	"github.com/pkg/errors"
)

// compactionUpperBound is an upper bound for every key written through a
// database.Bucket.
var compactionUpperBound = []byte{0xff, 0xff, 0xff, 0xff}

// PebbleDB defines a thin wrapper around Pebble.
type PebbleDB struct {
	db *pebble.DB

	openCursorsLock sync.Mutex
	openCursors     map[*PebbleDBCursor]struct{}
}

// NewPebbleDB opens a Pebble instance defined by the given path.
func NewPebbleDB(path string, cacheSizeMiB int) (*PebbleDB, error) {
	if cacheSizeMiB <= 0 {
		cacheSizeMiB = defaultCacheSizeMiB
	}
	cache := pebble.NewCache(int64(cacheSizeMiB) * 1024 * 1024)
	defer cache.Unref()

	db, err := openOrReplace(path, Options(cache))
	if err != nil {
		return nil, err
	}
	return &PebbleDB{
		db:          db,
		openCursors: make(map[*PebbleDBCursor]struct{}),
	}, nil
}

// openOrReplace opens the store at path. A corrupted store is replaced by an
// empty one.
func openOrReplace(path string, options *pebble.Options) (*pebble.DB, error) {
	db, err := pebble.Open(path, options)
	if err == nil {
		return db, nil
	}
	if !errors.Is(err, pebble.ErrCorruption) {
		return nil, errors.WithStack(err)
	}

	log.Warnf("Pebble corruption detected at %s, removing the store: %s", path, err)
	err = os.RemoveAll(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove corrupted DB")
	}
	db, err = pebble.Open(path, options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fresh DB after corruption")
	}
	log.Warnf("Created fresh Pebble DB at %s", path)
	return db, nil
}

// Compact compacts every bucket of the Pebble instance.
func (db *PebbleDB) Compact() error {
	err := db.db.Compact(context.Background(), nil, compactionUpperBound, false)
	return errors.WithStack(err)
}

// Close closes the Pebble instance. Cursors left open are closed first.
func (db *PebbleDB) Close() error {
	db.openCursorsLock.Lock()
	leftOpen := make([]*PebbleDBCursor, 0, len(db.openCursors))
	for cursor := range db.openCursors {
		leftOpen = append(leftOpen, cursor)
	}
	db.openCursorsLock.Unlock()

	for _, cursor := range leftOpen {
		log.Debugf("Closing a cursor over %s left open", cursor.bucket)
		err := cursor.Close()
		if err != nil {
			log.Warnf("Failed to close cursor: %s", err)
		}
	}

	return errors.WithStack(db.db.Close())
}

// Put sets the value for the given key. It overwrites any previous value for that key.
func (db *PebbleDB) Put(key *database.Key, value []byte) error {
	return errors.WithStack(db.db.Set(key.Bytes(), value, pebble.NoSync))
}

// Get gets the value for the given key. It returns ErrNotFound if the given key does not exist.
func (db *PebbleDB) Get(key *database.Key) ([]byte, error) {
	return get(db.db, key)
}

// Has returns true if the database contains the given key.
func (db *PebbleDB) Has(key *database.Key) (bool, error) {
	return has(db.db, key)
}

// Delete deletes the value for the given key. Will not return an error if the key doesn't exist.
func (db *PebbleDB) Delete(key *database.Key) error {
	return errors.WithStack(db.db.Delete(key.Bytes(), pebble.NoSync))
}

// get reads key from reader and returns a copy of its value, since the
// slice returned by Pebble is only valid until its closer is called.
func get(reader pebble.Reader, key *database.Key) ([]byte, error) {
	value, closer, err := reader.Get(key.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(database.ErrNotFound, "key %s not found", key)
		}
		return nil, errors.WithStack(err)
	}
	defer closer.Close()
	return append([]byte(nil), value...), nil
}

func has(reader pebble.Reader, key *database.Key) (bool, error) {
	_, err := get(reader, key)
	if database.IsNotFoundError(err) {
		return false, nil
	}
	return err == nil, err
}
