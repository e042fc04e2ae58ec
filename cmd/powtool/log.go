package main

import (
	"path/filepath"

	"github.com/cryptix-network/cryptixd/infrastructure/logger"
)

const (
	logFilename    = "powtool.log"
	errLogFilename = "powtool_err.log"
)

var log = logger.RegisterSubSystem("PTOL")

func initLog(flags *CommonFlags) error {
	if flags.LogDir != "" {
		logger.InitLog(filepath.Join(flags.LogDir, logFilename), filepath.Join(flags.LogDir, errLogFilename))
	} else {
		logger.InitLogStdout(logger.LevelInfo)
	}
	return logger.ParseAndSetLogLevels(flags.LogLevel)
}
