package main

import (
	"os"
	"path/filepath"

	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database/ldb"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database/pebble"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	dbTypeLevelDB = "leveldb"
	dbTypePebble  = "pebble"

	lockFilename = ".lock"
)

// lockedDatabase is a database whose data directory is held under a file
// lock until it is closed.
type lockedDatabase struct {
	database.Database
	lock *flock.Flock
}

func openDatabase(dbFlags *DatabaseFlags) (*lockedDatabase, error) {
	err := os.MkdirAll(dbFlags.DataDir, 0700)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create the data directory %s", dbFlags.DataDir)
	}

	lock := flock.New(filepath.Join(dbFlags.DataDir, lockFilename))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock the data directory %s", dbFlags.DataDir)
	}
	if !locked {
		return nil, errors.Errorf("the data directory %s is in use by another process", dbFlags.DataDir)
	}

	dbPath := filepath.Join(dbFlags.DataDir, dbFlags.DBType)
	var db database.Database
	switch dbFlags.DBType {
	case dbTypeLevelDB:
		db, err = ldb.NewLevelDB(dbPath, dbFlags.CacheSizeMiB)
	case dbTypePebble:
		db, err = pebble.NewPebbleDB(dbPath, dbFlags.CacheSizeMiB)
	default:
		err = errors.Errorf("unknown database type %q", dbFlags.DBType)
	}
	if err != nil {
		unlockErr := lock.Unlock()
		if unlockErr != nil {
			log.Warnf("Failed to unlock %s: %s", lock.Path(), unlockErr)
		}
		return nil, err
	}

	log.Infof("Opened %s database at %s", dbFlags.DBType, dbPath)
	return &lockedDatabase{Database: db, lock: lock}, nil
}

// Close closes the database and releases the data directory lock.
func (db *lockedDatabase) Close() error {
	err := db.Database.Close()
	unlockErr := db.lock.Unlock()
	if err != nil {
		return err
	}
	return errors.WithStack(unlockErr)
}
