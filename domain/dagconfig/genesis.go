// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"math/big"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/blockheader"
)

// emptyUTXOCommitment is the multiset hash of an empty UTXO set.
var emptyUTXOCommitment = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x54, 0x4e, 0xb3, 0x14, 0x2c, 0x00, 0x0f, 0x0a,
	0xd2, 0xc7, 0x6a, 0xc4, 0x1f, 0x42, 0x22, 0xab,
	0xba, 0xba, 0xbe, 0xd8, 0x30, 0xee, 0xaf, 0xee,
	0x4b, 0x6d, 0xc5, 0x6b, 0x52, 0xd5, 0xca, 0xc0,
})

// newGenesisHeader returns a header without parents. Genesis headers are of
// block version 0 and start the DAG with zero scores and zero blue work.
func newGenesisHeader(hashMerkleRoot *externalapi.DomainHash, timeInMilliseconds int64, bits uint32,
	nonce uint64) externalapi.BlockHeader {

	return blockheader.NewImmutableBlockHeader(
		0,
		[]externalapi.BlockLevelParents{},
		hashMerkleRoot,
		externalapi.NewZeroHash(),
		emptyUTXOCommitment,
		timeInMilliseconds,
		bits,
		nonce,
		0,
		0,
		big.NewInt(0),
		externalapi.NewZeroHash(),
	)
}

var genesisHashMerkleRoot = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x6b, 0xe3, 0xbd, 0x3a, 0x0c, 0x1a, 0x3f, 0x0a,
	0x3b, 0x1b, 0x2f, 0xfe, 0x5b, 0x6d, 0x2f, 0x3c,
	0x14, 0xf3, 0xf1, 0xb0, 0xe1, 0xf6, 0xa0, 0xd8,
	0x8e, 0xe7, 0xd9, 0xfc, 0xb2, 0xa0, 0x5c, 0x31,
})

// genesisHeader defines the genesis block header of the main network.
var genesisHeader = newGenesisHeader(genesisHashMerkleRoot, 1722340800000, 0x1e7fffff, 0x3392c)

// genesisHash is the hash of the first block in the block DAG for the main
// network (genesis block).
var genesisHash = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x89, 0xed, 0x1a, 0x0b, 0x52, 0x6c, 0x71, 0xdc,
	0x78, 0x56, 0xc0, 0x17, 0xd5, 0x84, 0x75, 0x90,
	0x51, 0xe5, 0xd6, 0xac, 0x1d, 0x56, 0x0e, 0x7b,
	0x31, 0xd9, 0xb9, 0xbf, 0x15, 0x50, 0x83, 0x9e,
})

var testnetGenesisHashMerkleRoot = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x1c, 0x9e, 0x3a, 0x5f, 0x70, 0xf7, 0xd1, 0xb0,
	0x6e, 0x34, 0xe4, 0xc1, 0xd3, 0xaa, 0x8a, 0x7b,
	0x93, 0xf2, 0xc2, 0xb9, 0xb1, 0xe4, 0xd0, 0xf6,
	0xa5, 0xc8, 0xe7, 0xb2, 0xd4, 0xf6, 0xa8, 0xc0,
})

// testnetGenesisHeader defines the genesis block header of the test network.
var testnetGenesisHeader = newGenesisHeader(testnetGenesisHashMerkleRoot, 1722427200000, 0x1e7fffff, 0x14582)

// testnetGenesisHash is the hash of the first block in the block DAG for the test
// network (genesis block).
var testnetGenesisHash = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0xa0, 0x0b, 0x66, 0xa3, 0xa7, 0xa9, 0xc3, 0x5e,
	0x6d, 0x80, 0xab, 0x77, 0x23, 0xc4, 0xe4, 0xb8,
	0x2c, 0x18, 0xd7, 0x23, 0x2c, 0x7a, 0x25, 0x46,
	0x2f, 0x03, 0xf3, 0x4c, 0xcb, 0x06, 0x49, 0x26,
})

var simnetGenesisHashMerkleRoot = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x4a, 0x7b, 0x0c, 0x3d, 0x9e, 0x1f, 0x2a, 0x5b,
	0x6c, 0x8d, 0x0e, 0x2f, 0x4a, 0x6b, 0x8c, 0x0d,
	0x1e, 0x3f, 0x5a, 0x7b, 0x9c, 0x1d, 0x3e, 0x5f,
	0x7a, 0x9b, 0x1c, 0x3d, 0x5e, 0x7f, 0x9a, 0x1b,
})

// simnetGenesisHeader defines the genesis block header of the simulation network.
var simnetGenesisHeader = newGenesisHeader(simnetGenesisHashMerkleRoot, 1722513600000, 0x207fffff, 0x2)

// simnetGenesisHash is the hash of the first block in the block DAG for
// the simulation test network (genesis block).
var simnetGenesisHash = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0xa3, 0x30, 0xbe, 0x4d, 0xe6, 0x18, 0xaf, 0xe2,
	0x95, 0x78, 0x4b, 0xa4, 0x2b, 0x7e, 0x8f, 0x5a,
	0xb6, 0x11, 0x06, 0xa5, 0x34, 0xae, 0x41, 0xc1,
	0x5f, 0xec, 0xdc, 0x0c, 0x7c, 0xa4, 0x42, 0x48,
})

var devnetGenesisHashMerkleRoot = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x0f, 0x1e, 0x2d, 0x3c, 0x4b, 0x5a, 0x69, 0x78,
	0x87, 0x96, 0xa5, 0xb4, 0xc3, 0xd2, 0xe1, 0xf0,
	0x0f, 0x1e, 0x2d, 0x3c, 0x4b, 0x5a, 0x69, 0x78,
	0x87, 0x96, 0xa5, 0xb4, 0xc3, 0xd2, 0xe1, 0xf0,
})

// devnetGenesisHeader defines the genesis block header of the development network.
var devnetGenesisHeader = newGenesisHeader(devnetGenesisHashMerkleRoot, 1722600000000, 0x1e21bc1c, 0x48e5e)

// devnetGenesisHash is the hash of the first block in the block DAG for the development
// network (genesis block).
var devnetGenesisHash = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{
	0x98, 0x6a, 0xc3, 0x9d, 0xfe, 0x03, 0x6e, 0xe2,
	0xec, 0x25, 0x42, 0x6f, 0x92, 0x2d, 0x16, 0x45,
	0x40, 0x90, 0x67, 0x6e, 0x1e, 0x61, 0xa8, 0xbc,
	0x1f, 0x8d, 0x83, 0xc9, 0x3f, 0x32, 0x77, 0xce,
})
