// Copyright (c) 2024 The Cryptix developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/cryptix-network/cryptixd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DAGC")
