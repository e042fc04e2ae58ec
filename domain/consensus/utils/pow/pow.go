package pow

import (
	"encoding/binary"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/consensushashing"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/difficulty"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/hashes"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// State is an intermediate data structure with pre-computed values to speed up mining.
// It is read-only once created and safe for concurrent use.
type State struct {
	mat        *Matrix
	timestamp  int64
	target     uint256.Int
	prePowHash *externalapi.DomainHash
	version    Version

	// PRE_POW_HASH || TIME || 32 zero byte padding; without NONCE
	hasher hashes.PowHashWriter
}

// NewState creates a new state with pre-computed values to speed up mining
// It takes the target from the Bits field and the proof of work version from
// the Version field of the header.
func NewState(header externalapi.BaseBlockHeader) *State {
	// Zero out the time and nonce.
	prePowHash := consensushashing.PrePowHash(header)
	return NewStateFromPrePowHash(prePowHash, header.TimeInMilliseconds(), header.Bits(),
		VersionFromBlockVersion(header.Version()))
}

// NewStateFromPrePowHash creates a new state for a header whose pre-pow hash
// was already computed by the caller.
func NewStateFromPrePowHash(prePowHash *externalapi.DomainHash, timestamp int64, bits uint32,
	version Version) *State {

	if !version.IsValid() {
		panic(errors.Errorf("unknown proof of work version %d", uint8(version)))
	}

	target, err := difficulty.CompactToTargetSaturating(bits)
	if err != nil {
		log.Warnf("Using target %s for header %s: %s", target.Hex(), prePowHash, err)
	}

	hasher := hashes.NewPoWHashWriter()
	hasher.InfallibleWrite(prePowHash.ByteSlice())
	var timestampBytes [8]byte
	binary.LittleEndian.PutUint64(timestampBytes[:], uint64(timestamp))
	hasher.InfallibleWrite(timestampBytes[:])
	var zeroes [32]byte
	hasher.InfallibleWrite(zeroes[:])

	return &State{
		mat:        cachedMatrix(prePowHash),
		timestamp:  timestamp,
		target:     *target,
		prePowHash: prePowHash,
		version:    version,
		hasher:     hasher,
	}
}

// CalculateProofOfWorkValue hashes the internal header with the given nonce and returns
// the result as a little endian 256 bit integer
func (state *State) CalculateProofOfWorkValue(nonce uint64) *uint256.Int {
	// Hasher already contains PRE_POW_HASH || TIME || 32 zero byte padding; so only the NONCE is missing
	writer := state.hasher.Clone()
	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	writer.InfallibleWrite(nonceBytes[:])
	powHash := writer.Finalize()
	if state.version == VersionCryptixHashV1 {
		powHash = preTransformV1(powHash)
	}
	matrixHash := state.mat.Transform(state.version, powHash)
	return hashes.ToUint256(matrixHash)
}

// CheckProofOfWork check's if the proof of work value of the given nonce is
// less or equal to the target. The proof of work value is returned as well.
func (state *State) CheckProofOfWork(nonce uint64) (bool, *uint256.Int) {
	proofOfWorkValue := state.CalculateProofOfWorkValue(nonce)
	// The pow hash must be less or equal than the claimed target.
	return !proofOfWorkValue.Gt(&state.target), proofOfWorkValue
}

// Target returns the target the proof of work value is compared against.
func (state *State) Target() *uint256.Int {
	return new(uint256.Int).Set(&state.target)
}

// PrePowHash returns the hash the matrix and the proof of work hash are seeded with.
func (state *State) PrePowHash() *externalapi.DomainHash {
	return state.prePowHash
}

// Timestamp returns the header timestamp in milliseconds.
func (state *State) Timestamp() int64 {
	return state.timestamp
}

// Version returns the matrix hash function version of the state.
func (state *State) Version() Version {
	return state.version
}

// CheckProofOfWorkByBits checks if the block's proof of work passes its
// claimed target, using the nonce stored in the header.
func CheckProofOfWorkByBits(header externalapi.BaseBlockHeader) bool {
	passed, _ := NewState(header).CheckProofOfWork(header.Nonce())
	return passed
}
