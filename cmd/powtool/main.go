package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

func main() {
	subCmd, conf, err := parseCommandLine(os.Args[1:])
	if err != nil {
		if isHelpError(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = runCommand(subCmd, conf, os.Stdout)
	if err != nil {
		printErrorAndExit(err)
	}
}

func runCommand(subCmd string, conf interface{}, out io.Writer) error {
	switch subCmd {
	case matrixSubCmd:
		matrixConf := conf.(*matrixConfig)
		if err := initLog(&matrixConf.CommonFlags); err != nil {
			return err
		}
		return showMatrix(matrixConf, out)
	case hashSubCmd:
		hashConf := conf.(*hashConfig)
		if err := initLog(&hashConf.CommonFlags); err != nil {
			return err
		}
		return calculateHashes(hashConf, out)
	case checkSubCmd:
		checkConf := conf.(*checkConfig)
		if err := initLog(&checkConf.CommonFlags); err != nil {
			return err
		}
		return checkProofOfWork(checkConf, out)
	case genesisSubCmd:
		genesisConf := conf.(*genesisConfig)
		if err := initLog(&genesisConf.CommonFlags); err != nil {
			return err
		}
		return showGenesis(genesisConf, out)
	case recordSubCmd:
		recordConf := conf.(*recordConfig)
		if err := initLog(&recordConf.CommonFlags); err != nil {
			return err
		}
		return recordVectors(recordConf, out)
	case verifySubCmd:
		verifyConf := conf.(*verifyConfig)
		if err := initLog(&verifyConf.CommonFlags); err != nil {
			return err
		}
		return verifyVectors(verifyConf, out)
	default:
		return errors.Errorf("Unknown sub-command '%s'", subCmd)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
