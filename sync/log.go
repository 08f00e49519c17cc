// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import "github.com/decred/slog"

// log is this package's subsystem logger. It is disabled until the caller
// wires a backend through UseLogger, following the decred/btcsuite
// convention every subsystem in this stack uses.
var log = slog.Disabled

// UseLogger sets the subsystem logger used by this package. Called once
// from cmd/mwcd during startup wiring.
func UseLogger(logger slog.Logger) {
	log = logger
}
