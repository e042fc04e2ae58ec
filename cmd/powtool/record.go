package main

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/cryptix-network/cryptixd/domain/consensus/datastructures/powvectorstore"
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/cryptix-network/cryptixd/infrastructure/db/database"
)

var vectorsPrefix = database.MakeBucket([]byte("powtool"))

func recordVectors(conf *recordConfig, out io.Writer) error {
	prePowHash, err := externalapi.NewDomainHashFromString(conf.PrePowHash)
	if err != nil {
		return err
	}
	versions, err := parseVersions(conf.Versions)
	if err != nil {
		return err
	}
	workers := conf.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

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
	dbTx, err := db.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	passedCount := 0
	for _, version := range versions {
		state := pow.NewStateFromPrePowHash(prePowHash, conf.Timestamp, conf.Bits, version)
		log.Infof("Recording %d %s vectors of %s starting at nonce %d",
			conf.Count, version, prePowHash, conf.StartNonce)

		// The channel is drained even after a failed write so that no
		// worker stays blocked.
		var addErr error
		for vector := range evaluateNonces(state, conf.Bits, conf.StartNonce, conf.Count, workers) {
			if addErr != nil {
				continue
			}
			addErr = store.Add(dbTx, vector)
			if vector.Passed {
				passedCount++
			}
		}
		if addErr != nil {
			return addErr
		}
	}

	err = dbTx.Commit()
	if err != nil {
		return err
	}
	if conf.Compact {
		log.Infof("Compacting the database")
		err = db.Compact()
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Recorded %d vectors, %d of them passed\n", uint64(len(versions))*conf.Count, passedCount)
	return nil
}

// evaluateNonces evaluates count nonces starting at startNonce on the given
// number of goroutines. The returned channel is closed once every nonce
// was evaluated.
func evaluateNonces(state *pow.State, bits uint32, startNonce, count uint64, workers int) <-chan *powvectorstore.Vector {
	nonces := make(chan uint64, workers)
	vectors := make(chan *powvectorstore.Vector, workers)

	go func() {
		defer close(nonces)
		for i := uint64(0); i < count; i++ {
			nonces <- startNonce + i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for nonce := range nonces {
				vectors <- powvectorstore.NewVector(state, bits, nonce)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(vectors)
	}()

	return vectors
}
