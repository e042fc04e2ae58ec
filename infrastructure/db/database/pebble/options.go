package pebble

import (
	"github.com/cockroachdb/pebble/v2"
)

const defaultCacheSizeMiB = 16

// Options returns a pebble.Options struct sized for a proof of work vector
// store: small values written in bursts by the recorder and read back
// sequentially by the verifier.
func Options(cache *pebble.Cache) *pebble.Options {
	memTableSize := uint64(8 * 1024 * 1024) // 8 MB
	opts := &pebble.Options{
		Cache: cache,

		MemTableSize:                memTableSize,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       16,
		BytesPerSync:                1024 * 1024,
	}

	opts.EnsureDefaults()
	return opts
}
