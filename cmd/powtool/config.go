package main

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/constants"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/pow"
	"github.com/cryptix-network/cryptixd/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	matrixSubCmd  = "matrix"
	hashSubCmd    = "hash"
	checkSubCmd   = "check"
	genesisSubCmd = "genesis"
	recordSubCmd  = "record"
	verifySubCmd  = "verify"
)

const (
	defaultLogLevel     = "info"
	defaultCacheSizeMiB = 16
	defaultRecordCount  = 1000
)

type CommonFlags struct {
	LogLevel string `long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir   string `long:"logdir" description:"Directory to write log files to. Logs are only written to stdout if empty"`
	config.NetworkFlags
}

type DatabaseFlags struct {
	DataDir      string `long:"datadir" description:"Directory to store the recorded vectors in" required:"true"`
	DBType       string `long:"dbtype" description:"Database backend {leveldb, pebble}"`
	CacheSizeMiB int    `long:"cache" description:"Database cache size in MiB"`
}

type StateFlags struct {
	PrePowHash string `long:"prepowhash" description:"The pre-pow hash of the header, hex encoded" required:"true"`
	Timestamp  int64  `long:"timestamp" description:"The header timestamp in milliseconds"`
}

type matrixConfig struct {
	PrePowHash string `long:"prepowhash" description:"The pre-pow hash the matrix is generated from, hex encoded" required:"true"`
	Dump       bool   `long:"dump" description:"Dump the matrix as a Go value instead of nibble rows"`
	CommonFlags
}

type hashConfig struct {
	StateFlags
	Nonce    uint64   `long:"nonce" base:"0" description:"The nonce to evaluate"`
	Versions []string `long:"pow" description:"Proof of work version to evaluate {heavyhash, cryptixhashv1, cryptixhashv2}. May be repeated. Defaults to all versions"`
	CommonFlags
}

type checkConfig struct {
	StateFlags
	Bits         uint32 `long:"bits" base:"0" description:"The compact target of the header" required:"true"`
	Nonce        uint64 `long:"nonce" base:"0" description:"The nonce to check"`
	BlockVersion uint16 `long:"blockversion" description:"The header block version, selects the proof of work version"`
	CommonFlags
}

type genesisConfig struct {
	CommonFlags
}

type recordConfig struct {
	StateFlags
	Bits       uint32   `long:"bits" base:"0" description:"The compact target the vectors are checked against" required:"true"`
	Versions   []string `long:"pow" description:"Proof of work version to record {heavyhash, cryptixhashv1, cryptixhashv2}. May be repeated. Defaults to all versions"`
	StartNonce uint64   `long:"startnonce" description:"The first nonce to record"`
	Count      uint64   `long:"count" description:"The number of nonces to record per version"`
	Workers    int      `long:"workers" description:"The number of goroutines computing vectors. Defaults to the number of CPUs"`
	Compact    bool     `long:"compact" description:"Compact the database once the vectors are committed"`
	DatabaseFlags
	CommonFlags
}

type verifyConfig struct {
	DatabaseFlags
	CommonFlags
}

// isHelpError reports whether err was returned because the help message was
// requested.
func isHelpError(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

func parseCommandLine(args []string) (subCommand string, conf interface{}, err error) {
	cfg := &struct{}{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	matrixConf := &matrixConfig{CommonFlags: CommonFlags{LogLevel: defaultLogLevel}}
	parser.AddCommand(matrixSubCmd, "Generates the matrix of a pre-pow hash",
		"Generates the full rank matrix derived from a pre-pow hash and prints it together with its rank", matrixConf)

	hashConf := &hashConfig{CommonFlags: CommonFlags{LogLevel: defaultLogLevel}}
	parser.AddCommand(hashSubCmd, "Calculates proof of work values",
		"Calculates the proof of work value of a nonce for each of the requested proof of work versions", hashConf)

	checkConf := &checkConfig{
		BlockVersion: constants.BlockVersion,
		CommonFlags:  CommonFlags{LogLevel: defaultLogLevel},
	}
	parser.AddCommand(checkSubCmd, "Checks the proof of work of a nonce",
		"Checks whether the proof of work value of a nonce is within the target of the given bits, and "+
			"prints the resulting block level", checkConf)

	genesisConf := &genesisConfig{CommonFlags: CommonFlags{LogLevel: defaultLogLevel}}
	parser.AddCommand(genesisSubCmd, "Prints the genesis of the selected network",
		"Recomputes the genesis hash of the selected network and prints its block level and proof of work", genesisConf)

	recordConf := &recordConfig{
		Count:         defaultRecordCount,
		DatabaseFlags: DatabaseFlags{DBType: dbTypePebble, CacheSizeMiB: defaultCacheSizeMiB},
		CommonFlags:   CommonFlags{LogLevel: defaultLogLevel},
	}
	parser.AddCommand(recordSubCmd, "Records proof of work vectors",
		"Evaluates a range of nonces and stores the resulting proof of work vectors in a database", recordConf)

	verifyConf := &verifyConfig{
		DatabaseFlags: DatabaseFlags{DBType: dbTypePebble, CacheSizeMiB: defaultCacheSizeMiB},
		CommonFlags:   CommonFlags{LogLevel: defaultLogLevel},
	}
	parser.AddCommand(verifySubCmd, "Verifies recorded proof of work vectors",
		"Recomputes every recorded proof of work vector and reports the ones that do not reproduce", verifyConf)

	_, err = parser.ParseArgs(args)
	if err != nil {
		return "", nil, err
	}

	var networkFlags *config.NetworkFlags
	switch parser.Command.Active.Name {
	case matrixSubCmd:
		networkFlags = &matrixConf.NetworkFlags
		conf = matrixConf
	case hashSubCmd:
		networkFlags = &hashConf.NetworkFlags
		_, err = parseVersions(hashConf.Versions)
		conf = hashConf
	case checkSubCmd:
		networkFlags = &checkConf.NetworkFlags
		conf = checkConf
	case genesisSubCmd:
		networkFlags = &genesisConf.NetworkFlags
		conf = genesisConf
	case recordSubCmd:
		networkFlags = &recordConf.NetworkFlags
		err = validateDatabaseFlags(&recordConf.DatabaseFlags)
		if err == nil {
			_, err = parseVersions(recordConf.Versions)
		}
		if err == nil && recordConf.Workers < 0 {
			err = errors.Errorf("--workers must not be negative")
		}
		conf = recordConf
	case verifySubCmd:
		networkFlags = &verifyConf.NetworkFlags
		err = validateDatabaseFlags(&verifyConf.DatabaseFlags)
		conf = verifyConf
	}
	if err != nil {
		return "", nil, err
	}

	err = networkFlags.ResolveNetwork(parser)
	if err != nil {
		return "", nil, err
	}
	return parser.Command.Active.Name, conf, nil
}

func validateDatabaseFlags(dbFlags *DatabaseFlags) error {
	switch dbFlags.DBType {
	case dbTypeLevelDB, dbTypePebble:
	default:
		return errors.Errorf("unknown database type %q, expected %s or %s", dbFlags.DBType, dbTypeLevelDB, dbTypePebble)
	}
	if dbFlags.CacheSizeMiB <= 0 {
		return errors.Errorf("--cache must be positive")
	}
	return nil
}

// parseVersions returns the proof of work versions with the given names, or
// every known version if names is empty.
func parseVersions(names []string) ([]pow.Version, error) {
	if len(names) == 0 {
		return []pow.Version{pow.VersionHeavyHash, pow.VersionCryptixHashV1, pow.VersionCryptixHashV2}, nil
	}
	versions := make([]pow.Version, 0, len(names))
	seen := make(map[pow.Version]struct{}, len(names))
	for _, name := range names {
		version, err := pow.ParseVersion(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[version]; ok {
			continue
		}
		seen[version] = struct{}{}
		versions = append(versions, version)
	}
	return versions, nil
}
