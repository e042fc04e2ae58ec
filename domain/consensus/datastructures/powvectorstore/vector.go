package powvectorstore

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/holiman/uint256"
)

// Vector is a recorded proof of work evaluation: the inputs of a State, a
// nonce, and the value and verdict the State produced for them.
type Vector struct {
	Version    pow.Version
	PrePowHash *externalapi.DomainHash
	Timestamp  int64
	Bits       uint32
	Nonce      uint64

	Value  *uint256.Int
	Passed bool
}

// NewVector evaluates the given nonce with state and returns the result as a
// Vector.
func NewVector(state *pow.State, bits uint32, nonce uint64) *Vector {
	passed, value := state.CheckProofOfWork(nonce)
	return &Vector{
		Version:    state.Version(),
		PrePowHash: state.PrePowHash(),
		Timestamp:  state.Timestamp(),
		Bits:       bits,
		Nonce:      nonce,
		Value:      value,
		Passed:     passed,
	}
}

// Recompute evaluates the vector inputs again and returns the resulting
// vector.
func (v *Vector) Recompute() *Vector {
	state := pow.NewStateFromPrePowHash(v.PrePowHash, v.Timestamp, v.Bits, v.Version)
	return NewVector(state, v.Bits, v.Nonce)
}

// Equal returns whether v and other hold the same inputs and results.
func (v *Vector) Equal(other *Vector) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Version == other.Version &&
		v.PrePowHash.Equal(other.PrePowHash) &&
		v.Timestamp == other.Timestamp &&
		v.Bits == other.Bits &&
		v.Nonce == other.Nonce &&
		v.Value.Eq(other.Value) &&
		v.Passed == other.Passed
}
