// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
	syncpkg "github.com/mwc-project/mwc-node/sync"
)

// logRotator writes logged bytes to both stdout and a size-rotated log
// file under the active network's log directory.
var logRotator *rotator.Rotator

// backendLog is the shared slog backend every subsystem logger is derived
// from, in the decred/btcsuite convention of one backend feeding many
// named, independently levelable subsystem loggers.
var backendLog = slog.NewBackend(logWriter{})

type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// subsystemLoggers maps each subsystem tag to its backend-derived logger,
// so setLogLevel can look one up by name.
var subsystemLoggers = map[string]slog.Logger{
	"CHNS": chainLog,
	"SYNC": syncLog,
	"PEER": peerLog,
}

var (
	chainLog = backendLog.Logger("CHNS")
	syncLog  = backendLog.Logger("SYNC")
	peerLog  = backendLog.Logger("PEER")
)

// initLogRotator creates a size-limited rotating log file at logFile,
// following the standard jrick/logrotate wiring: 10 MiB per file before
// rotating, keeping the most recent generations alongside it.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// setLogLevels applies levelSpec ("trace", "debug", "info", "warn",
// "error", "critical") to every known subsystem logger.
func setLogLevels(levelSpec string) {
	level, ok := slog.LevelFromString(levelSpec)
	if !ok {
		level = slog.LevelInfo
	}
	for _, l := range subsystemLoggers {
		l.SetLevel(level)
	}
}

// useLoggers wires each package's subsystem logger into its UseLogger
// hook, the convention every collaborator package in this tree follows.
func useLoggers() {
	chain.UseLogger(chainLog)
	syncpkg.UseLogger(syncLog)
	p2p.UseLogger(peerLog)
}

var _ io.Writer = logWriter{}
