// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"math/big"
	"time"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// These variables are the DAG proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowMax is the highest proof of work value a Cryptix block can
	// have for the main network. It is the value 2^255 - 1.
	mainPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// testnetPowMax is the highest proof of work value a Cryptix block
	// can have for the test network. It is the value 2^255 - 1.
	testnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// simnetPowMax is the highest proof of work value a Cryptix block
	// can have for the simulation network. It is the value 2^255 - 1.
	simnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// devnetPowMax is the highest proof of work value a Cryptix block
	// can have for the development network. It is the value
	// 2^239 - 1.
	devnetPowMax = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 239), bigOne)
)

// Net represents which Cryptix network a message belongs to.
type Net uint32

// Constants used to indicate the message Cryptix network. They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// Mainnet represents the main Cryptix network.
	Mainnet Net = 0x3ddcf71d

	// Testnet represents the test network.
	Testnet Net = 0xddb8af8f

	// Simnet represents the simulation test network.
	Simnet Net = 0x374dcf1c

	// Devnet represents the development test network.
	Devnet Net = 0x732d87e1
)

// Params defines a Cryptix network by its parameters. These parameters may be
// used by Cryptix applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net Net

	// GenesisHeader defines the header of the first block of the DAG.
	GenesisHeader externalapi.BlockHeader

	// GenesisHash is the starting block hash.
	GenesisHash *externalapi.DomainHash

	// PowMax defines the highest allowed proof of work value for a block
	// as a uint256.
	PowMax *big.Int

	// BlockVersion is the version given to blocks built for this network.
	// It selects the matrix hash function of the proof of work.
	BlockVersion uint16

	// MaxBlockLevel is the maximum possible block level.
	MaxBlockLevel int

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// SkipProofOfWork indicates whether proof of work should be checked.
	SkipProofOfWork bool
}

// MainnetParams defines the network parameters for the main Cryptix network.
var MainnetParams = Params{
	Name:               "cryptix-mainnet",
	Net:                Mainnet,
	GenesisHeader:      genesisHeader,
	GenesisHash:        genesisHash,
	PowMax:             mainPowMax,
	BlockVersion:       constants.BlockVersion,
	MaxBlockLevel:      constants.MaxBlockLevel,
	TargetTimePerBlock: time.Second,
	SkipProofOfWork:    false,
}

// TestnetParams defines the network parameters for the test Cryptix network.
var TestnetParams = Params{
	Name:               "cryptix-testnet",
	Net:                Testnet,
	GenesisHeader:      testnetGenesisHeader,
	GenesisHash:        testnetGenesisHash,
	PowMax:             testnetPowMax,
	BlockVersion:       constants.BlockVersion,
	MaxBlockLevel:      constants.MaxBlockLevel,
	TargetTimePerBlock: time.Second,
	SkipProofOfWork:    false,
}

// SimnetParams defines the network parameters for the simulation test Cryptix
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing. The functionality is intended to differ in that the only nodes
// which are specifically specified are used to create the network rather than
// following normal discovery rules. This is important as otherwise it would
// just turn into another public testnet.
var SimnetParams = Params{
	Name:               "cryptix-simnet",
	Net:                Simnet,
	GenesisHeader:      simnetGenesisHeader,
	GenesisHash:        simnetGenesisHash,
	PowMax:             simnetPowMax,
	BlockVersion:       constants.BlockVersion,
	MaxBlockLevel:      constants.MaxBlockLevel,
	TargetTimePerBlock: time.Millisecond,
	SkipProofOfWork:    false,
}

// DevnetParams defines the network parameters for the development Cryptix network.
var DevnetParams = Params{
	Name:               "cryptix-devnet",
	Net:                Devnet,
	GenesisHeader:      devnetGenesisHeader,
	GenesisHash:        devnetGenesisHash,
	PowMax:             devnetPowMax,
	BlockVersion:       constants.BlockVersion,
	MaxBlockLevel:      constants.MaxBlockLevel,
	TargetTimePerBlock: time.Second,
	SkipProofOfWork:    false,
}

// ErrDuplicateNet describes an error where the parameters for a Cryptix
// network could not be set due to the network already being a standard
// network or previously-registered into this package.
var ErrDuplicateNet = errors.New("duplicate Cryptix network")

var registeredNets = make(map[Net]struct{})

// Register registers the network parameters for a Cryptix network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return errors.Wrapf(ErrDuplicateNet, "network %s", params.Name)
	}
	registeredNets[params.Net] = struct{}{}
	log.Debugf("Registered network %s", params.Name)
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&SimnetParams)
	mustRegister(&DevnetParams)
}
