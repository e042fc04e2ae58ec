package pow

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/holiman/uint256"
)

// BlockLevel returns the block level of the given header.
func BlockLevel(header externalapi.BaseBlockHeader, maxBlockLevel int) int {
	blockLevel, _ := BlockLevelCheckProofOfWork(header, maxBlockLevel)
	return blockLevel
}

// BlockLevelCheckProofOfWork returns the block level of the given header, and
// whether its proof of work passes the target claimed in its bits.
func BlockLevelCheckProofOfWork(header externalapi.BaseBlockHeader, maxBlockLevel int) (int, bool) {
	// Genesis is defined to be the root of all blocks at all levels, so we define it to be the maximal
	// block level.
	if len(header.DirectParents()) == 0 {
		return maxBlockLevel, true
	}

	state := NewState(header)
	passed, proofOfWorkValue := state.CheckProofOfWork(header.Nonce())
	return LevelFromProofOfWorkValue(proofOfWorkValue, maxBlockLevel), passed
}

// LevelFromProofOfWorkValue returns max(maxBlockLevel - bitlen(proofOfWorkValue), 0).
func LevelFromProofOfWorkValue(proofOfWorkValue *uint256.Int, maxBlockLevel int) int {
	level := maxBlockLevel - proofOfWorkValue.BitLen()
	// If the block has a level lower than genesis make it zero.
	if level < 0 {
		level = 0
	}
	return level
}
