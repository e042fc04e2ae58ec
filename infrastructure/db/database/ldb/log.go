package ldb

import (
	"github.com/cryptix-network/cryptixd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("LVDB")
