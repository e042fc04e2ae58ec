package pow

import (
	"github.com/cryptix-network/cryptixd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("POW")
