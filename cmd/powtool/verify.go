package main

import (
	"fmt"
	"io"

	"github.com/cryptix-network/cryptixd/domain/consensus/datastructures/powvectorstore"
	"github.com/pkg/errors"
)

func verifyVectors(conf *verifyConfig, out io.Writer) error {
	db, err := openDatabase(&conf.DatabaseFlags)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close()
		if closeErr != nil {
			log.Errorf("Failed to close the database: %s", closeErr)
		}
	}()

	store := powvectorstore.New(vectorsPrefix)
	checked, mismatches, err := store.Verify(db)
	if err != nil {
		return err
	}

	for _, mismatch := range mismatches {
		recorded := mismatch.Recorded
		fmt.Fprintf(out, "%s %s nonce %d: recorded %s (passed %t), recomputed %s (passed %t)\n",
			recorded.Version, recorded.PrePowHash, recorded.Nonce,
			recorded.Value.Hex(), recorded.Passed, mismatch.Recomputed.Value.Hex(), mismatch.Recomputed.Passed)
	}
	fmt.Fprintf(out, "Verified %d vectors, %d mismatches\n", checked, len(mismatches))
	if len(mismatches) > 0 {
		return errors.Errorf("%d of %d vectors did not reproduce", len(mismatches), checked)
	}
	return nil
}
