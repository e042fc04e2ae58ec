package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/davecgh/go-spew/spew"
)

func showMatrix(conf *matrixConfig, out io.Writer) error {
	prePowHash, err := externalapi.NewDomainHashFromString(conf.PrePowHash)
	if err != nil {
		return err
	}

	mat := pow.GenerateMatrix(prePowHash)
	fmt.Fprintf(out, "Matrix of %s\n", prePowHash)
	fmt.Fprintf(out, "Rank: %d\n", mat.ComputeRank())
	if conf.Dump {
		spew.Fdump(out, mat)
		return nil
	}

	var row strings.Builder
	for i := range mat {
		row.Reset()
		for _, element := range mat[i] {
			fmt.Fprintf(&row, "%x", element)
		}
		fmt.Fprintln(out, row.String())
	}
	return nil
}
