package main

import (
	"fmt"
	"io"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
)

func calculateHashes(conf *hashConfig, out io.Writer) error {
	prePowHash, err := externalapi.NewDomainHashFromString(conf.PrePowHash)
	if err != nil {
		return err
	}
	versions, err := parseVersions(conf.Versions)
	if err != nil {
		return err
	}

	maxBlockLevel := conf.NetParams().MaxBlockLevel
	for _, version := range versions {
		// The bits only affect the target, which is not reported here.
		state := pow.NewStateFromPrePowHash(prePowHash, conf.Timestamp, 0, version)
		value := state.CalculateProofOfWorkValue(conf.Nonce)
		fmt.Fprintf(out, "%s: value %s, bit length %d, level %d\n", version, value.Hex(), value.BitLen(),
			pow.LevelFromProofOfWorkValue(value, maxBlockLevel))
	}
	return nil
}

func checkProofOfWork(conf *checkConfig, out io.Writer) error {
	prePowHash, err := externalapi.NewDomainHashFromString(conf.PrePowHash)
	if err != nil {
		return err
	}

	version := pow.VersionFromBlockVersion(conf.BlockVersion)
	state := pow.NewStateFromPrePowHash(prePowHash, conf.Timestamp, conf.Bits, version)
	passed, value := state.CheckProofOfWork(conf.Nonce)
	level := pow.LevelFromProofOfWorkValue(value, conf.NetParams().MaxBlockLevel)
	log.Debugf("Checked nonce %d of %s with %s", conf.Nonce, prePowHash, version)

	fmt.Fprintf(out, "Version: %s\n", version)
	fmt.Fprintf(out, "Target:  %s\n", state.Target().Hex())
	fmt.Fprintf(out, "Value:   %s\n", value.Hex())
	fmt.Fprintf(out, "Level:   %d\n", level)
	fmt.Fprintf(out, "Passed:  %t\n", passed)
	return nil
}
