package testutils

import (
	"math/big"
	"testing"

	"github.com/cryptix-network/cryptixd/domain/dagconfig"
)

func cloneParams(params dagconfig.Params) dagconfig.Params {
	cloned := params
	cloned.PowMax = new(big.Int).Set(params.PowMax)
	return cloned
}

// ForAllNets runs the passed testFunc with all available networks
// if skipPow = true - will modify the net params to skip the proof of work check.
// Every subtest receives its own copy of the network params.
func ForAllNets(t *testing.T, skipPow bool, testFunc func(*testing.T, *dagconfig.Params)) {
	allParams := []dagconfig.Params{
		dagconfig.MainnetParams,
		dagconfig.TestnetParams,
		dagconfig.SimnetParams,
		dagconfig.DevnetParams,
	}

	for _, params := range allParams {
		params := cloneParams(params)
		t.Run(params.Name, func(t *testing.T) {
			params.SkipProofOfWork = skipPow
			t.Logf("Running test for %s", params.Name)
			testFunc(t, &params)
		})
	}
}
