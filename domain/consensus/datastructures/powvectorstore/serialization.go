package powvectorstore

import (
	"encoding/binary"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const (
	// version || pre-pow hash || timestamp || nonce
	keySuffixLength = 1 + externalapi.DomainHashSize + 8 + 8

	// bits || passed || value
	serializedVectorLength = 4 + 1 + 32
)

// keySuffix encodes the vector inputs big endian, so that a cursor visits
// the vectors ordered by version, pre-pow hash, timestamp and nonce.
func keySuffix(version pow.Version, prePowHash *externalapi.DomainHash, timestamp int64, nonce uint64) []byte {
	suffix := make([]byte, keySuffixLength)
	suffix[0] = byte(version)
	copy(suffix[1:], prePowHash.ByteSlice())
	binary.BigEndian.PutUint64(suffix[1+externalapi.DomainHashSize:], uint64(timestamp))
	binary.BigEndian.PutUint64(suffix[1+externalapi.DomainHashSize+8:], nonce)
	return suffix
}

func serializeVector(vector *Vector) []byte {
	serialized := make([]byte, serializedVectorLength)
	binary.LittleEndian.PutUint32(serialized, vector.Bits)
	if vector.Passed {
		serialized[4] = 1
	}
	value := vector.Value.Bytes32()
	copy(serialized[5:], value[:])
	return serialized
}

func deserializeVector(suffix []byte, serialized []byte) (*Vector, error) {
	if len(suffix) != keySuffixLength {
		return nil, errors.Errorf("invalid vector key length %d", len(suffix))
	}
	if len(serialized) != serializedVectorLength {
		return nil, errors.Errorf("invalid serialized vector length %d", len(serialized))
	}

	version := pow.Version(suffix[0])
	if !version.IsValid() {
		return nil, errors.Errorf("unknown proof of work version %d", suffix[0])
	}
	prePowHash, err := externalapi.NewDomainHashFromByteSlice(suffix[1 : 1+externalapi.DomainHashSize])
	if err != nil {
		return nil, err
	}

	var passed bool
	switch serialized[4] {
	case 0:
	case 1:
		passed = true
	default:
		return nil, errors.Errorf("invalid passed flag %d", serialized[4])
	}

	return &Vector{
		Version:    version,
		PrePowHash: prePowHash,
		Timestamp:  int64(binary.BigEndian.Uint64(suffix[1+externalapi.DomainHashSize:])),
		Bits:       binary.LittleEndian.Uint32(serialized),
		Nonce:      binary.BigEndian.Uint64(suffix[1+externalapi.DomainHashSize+8:]),
		Value:      new(uint256.Int).SetBytes(serialized[5:]),
		Passed:     passed,
	}, nil
}
