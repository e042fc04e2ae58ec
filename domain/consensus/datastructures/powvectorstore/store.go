package powvectorstore

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
	"github.com/pkg/errors"
)

var bucketName = []byte("pow-vectors")

// Store keeps recorded proof of work vectors in a database bucket.
type Store struct {
	bucket *database.Bucket
}

// New instantiates a new Store under the given prefix bucket.
func New(prefixBucket *database.Bucket) *Store {
	return &Store{
		bucket: prefixBucket.Bucket(bucketName),
	}
}

func (s *Store) key(version pow.Version, prePowHash *externalapi.DomainHash, timestamp int64, nonce uint64) *database.Key {
	return s.bucket.Key(keySuffix(version, prePowHash, timestamp, nonce))
}

// Add writes the given vector, replacing a vector with the same inputs.
func (s *Store) Add(dbWriter database.DataAccessor, vector *Vector) error {
	if !vector.Version.IsValid() {
		return errors.Errorf("unknown proof of work version %d", uint8(vector.Version))
	}
	key := s.key(vector.Version, vector.PrePowHash, vector.Timestamp, vector.Nonce)
	return dbWriter.Put(key, serializeVector(vector))
}

// Get returns the vector recorded for the given inputs. It returns an
// error that satisfies database.IsNotFoundError if no such vector exists.
func (s *Store) Get(dbReader database.DataAccessor, version pow.Version, prePowHash *externalapi.DomainHash,
	timestamp int64, nonce uint64) (*Vector, error) {

	key := s.key(version, prePowHash, timestamp, nonce)
	serialized, err := dbReader.Get(key)
	if err != nil {
		return nil, err
	}
	return deserializeVector(key.Suffix(), serialized)
}

// Has returns whether a vector is recorded for the given inputs.
func (s *Store) Has(dbReader database.DataAccessor, version pow.Version, prePowHash *externalapi.DomainHash,
	timestamp int64, nonce uint64) (bool, error) {

	return dbReader.Has(s.key(version, prePowHash, timestamp, nonce))
}

// Delete removes the vector recorded for the given inputs, if any.
func (s *Store) Delete(dbWriter database.DataAccessor, version pow.Version, prePowHash *externalapi.DomainHash,
	timestamp int64, nonce uint64) error {

	return dbWriter.Delete(s.key(version, prePowHash, timestamp, nonce))
}

// ForEach calls handler with every recorded vector, in key order. Iteration
// stops at the first error returned by handler.
func (s *Store) ForEach(dbReader database.DataAccessor, handler func(vector *Vector) error) error {
	cursor, err := dbReader.Cursor(s.bucket)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := cursor.Close()
		if closeErr != nil {
			log.Warnf("Failed to close the vector cursor: %s", closeErr)
		}
	}()

	for cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return err
		}
		serialized, err := cursor.Value()
		if err != nil {
			return err
		}
		vector, err := deserializeVector(key.Suffix(), serialized)
		if err != nil {
			return errors.Wrapf(err, "corrupted vector under key %s", key)
		}
		err = handler(vector)
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of recorded vectors.
func (s *Store) Count(dbReader database.DataAccessor) (int, error) {
	count := 0
	err := s.ForEach(dbReader, func(*Vector) error {
		count++
		return nil
	})
	return count, err
}

// Mismatch is a recorded vector whose recomputation produced a different
// result.
type Mismatch struct {
	Recorded   *Vector
	Recomputed *Vector
}

// Verify recomputes every recorded vector and returns the number of vectors
// checked and the ones that no longer reproduce.
func (s *Store) Verify(dbReader database.DataAccessor) (int, []*Mismatch, error) {
	checked := 0
	var mismatches []*Mismatch
	err := s.ForEach(dbReader, func(recorded *Vector) error {
		checked++
		recomputed := recorded.Recompute()
		if !recorded.Equal(recomputed) {
			log.Debugf("Vector %s/%d of %s does not reproduce", recorded.PrePowHash, recorded.Nonce, recorded.Version)
			mismatches = append(mismatches, &Mismatch{Recorded: recorded, Recomputed: recomputed})
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return checked, mismatches, nil
}
