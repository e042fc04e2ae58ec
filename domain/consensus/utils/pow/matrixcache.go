package pow

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/lrucache"
)

// matrixCacheSize is the number of matrices kept in memory. Every nonce of a
// block template shares the same pre-pow hash, so a small cache is enough.
const matrixCacheSize = 128

var matrixCache = lrucache.New[*Matrix](matrixCacheSize, true)

// cachedMatrix returns the Matrix generated from hash, reusing a previously
// generated one if it's still in the cache.
func cachedMatrix(hash *externalapi.DomainHash) *Matrix {
	mat, ok := matrixCache.Get(hash)
	if ok {
		return mat
	}
	mat = GenerateMatrix(hash)
	matrixCache.Add(hash, mat)
	return mat
}
