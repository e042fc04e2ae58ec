package hashes

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

const (
	blockDomain       = "BlockHash"
	proofOfWorkDomain = "ProofOfWorkHash"
	heavyHashDomain   = "HeavyHash"
	// Provisional, not checked against a reference node.
	cryptixHashDomain = "CryptixHashV2"
)

// NewBlockHashWriter Returns a new HashWriter used for hashing blocks
func NewBlockHashWriter() HashWriter {
	blake, err := blake2b.New256([]byte(blockDomain))
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is less than 64 bytes", blockDomain))
	}
	return HashWriter{blake}
}

// NewPoWHashWriter Returns a new PowHashWriter used for the PoW function
func NewPoWHashWriter() PowHashWriter {
	shake256 := sha3.NewCShake256(nil, []byte(proofOfWorkDomain))
	return PowHashWriter{shake256}
}

// NewHeavyHashWriter Returns a new HeavyHashWriter used for the legacy HeavyHash function
func NewHeavyHashWriter() HeavyHashWriter {
	shake256 := sha3.NewCShake256(nil, []byte(heavyHashDomain))
	return HeavyHashWriter{shake256}
}

// NewCryptixHashWriter Returns a new HeavyHashWriter used for the final
// step of the CryptixHash function
func NewCryptixHashWriter() HeavyHashWriter {
	shake256 := sha3.NewCShake256(nil, []byte(cryptixHashDomain))
	return HeavyHashWriter{shake256}
}

// Blake3 returns the 32 byte BLAKE3 digest of data.
func Blake3(data []byte) [32]byte {
	return blake3.Sum256(data)
}
