package powvectorstore

import (
	"github.com/cryptix-network/cryptixd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("PVST")
