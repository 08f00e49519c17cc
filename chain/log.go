// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "github.com/decred/slog"

// log is this package's subsystem logger, disabled until wired by the
// caller (see sync.UseLogger for the convention).
var log = slog.Disabled

// UseLogger sets the subsystem logger used by this package.
func UseLogger(logger slog.Logger) {
	log = logger
}
