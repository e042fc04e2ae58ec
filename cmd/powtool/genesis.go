package main

import (
	"fmt"
	"io"

	"github.com/cryptix-network/cryptixd/domain/consensus/utils/consensushashing"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/pkg/errors"
)

func showGenesis(conf *genesisConfig, out io.Writer) error {
	params := conf.NetParams()
	genesisHash := consensushashing.HeaderHash(params.GenesisHeader)
	if !genesisHash.Equal(params.GenesisHash) {
		return errors.Errorf("the genesis header of %s hashes to %s instead of %s",
			params.Name, genesisHash, params.GenesisHash)
	}

	level, _ := pow.BlockLevelCheckProofOfWork(params.GenesisHeader, params.MaxBlockLevel)
	passed, value := pow.NewState(params.GenesisHeader).CheckProofOfWork(params.GenesisHeader.Nonce())

	fmt.Fprintf(out, "Network: %s\n", params.Name)
	fmt.Fprintf(out, "Hash:    %s\n", genesisHash)
	fmt.Fprintf(out, "Bits:    %08x\n", params.GenesisHeader.Bits())
	fmt.Fprintf(out, "Level:   %d\n", level)
	fmt.Fprintf(out, "Value:   %s\n", value.Hex())
	fmt.Fprintf(out, "Passed:  %t\n", passed)
	return nil
}
