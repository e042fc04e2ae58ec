package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

const defaultCacheSizeMiB = 16

// Options is a function that returns a leveldb
// opt.Options struct for opening a database.
func Options(cacheSizeMiB int) opt.Options {
	if cacheSizeMiB <= 0 {
		cacheSizeMiB = defaultCacheSizeMiB
	}
	return opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     cacheSizeMiB * opt.MiB,
		WriteBuffer:            (cacheSizeMiB * opt.MiB) / 2,
		OpenFilesCacheCapacity: 64,
		BlockRestartInterval:   32,
	}
}
