// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
	syncpkg "github.com/mwc-project/mwc-node/sync"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return fmt.Errorf("init log rotator: %w", err)
	}
	useLoggers()
	setLogLevels(cfg.DebugLevel)

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	store, err := chain.OpenLevelStore(filepath.Join(cfg.DataDir, "chain.db"))
	if err != nil {
		return fmt.Errorf("open chain store: %w", err)
	}
	defer store.Close()

	peers, err := p2p.NewConnPeers(cfg.DataDir, uint32(cfg.MaxOutbound), cfg.proxyConfig())
	if err != nil {
		return fmt.Errorf("init peers: %w", err)
	}
	peers.Start()
	defer peers.Stop()

	state := syncpkg.NewState()
	stop := syncpkg.NewStopState()

	syncCfg := syncpkg.Config{
		DurationSyncLong:   defaultSyncLongInterval,
		DurationSyncShort:  defaultSyncShortInterval,
		HeaderCacheSize:    cfg.HeaderCacheSize,
		PreferredPeers:     cfg.normalizedPreferredPeers(),
		StateSyncThreshold: activeNetParams.StateSyncThreshold,
	}
	handle := syncpkg.RunSync(syncCfg, state, peers, store, stop)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	chainLog.Info("shutdown requested, stopping sync")
	stop.Stop()
	handle.Wait()

	return nil
}
