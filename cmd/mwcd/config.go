// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
	"github.com/mwc-project/mwc-node/p2p"
)

const (
	defaultConfigFilename = "mwcd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "mwcd.log"

	defaultTargetOutboundPeers = 8
	defaultHeaderCacheSize     = 4096
	defaultSyncLongInterval    = 10 * time.Second
	defaultSyncShortInterval   = 2 * time.Second
)

var (
	defaultHomeDir    = appHomeDir()
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for mwcd, parsed from the
// command line and an optional config file in the conventional
// jessevdk/go-flags-plus-INI-file shape.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir    string `short:"A" long:"appdata" description:"Application data directory"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store chain data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`

	TestNet bool `long:"testnet" description:"Use the test network"`

	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`

	Listen         []string `long:"listen" description:"Add an address to listen for connections"`
	ConnectPeers   []string `long:"connect" description:"Connect only to the specified peers"`
	AddPeers       []string `long:"addpeer" description:"Add a peer to connect with at startup"`
	PreferredPeers []string `long:"preferredpeer" description:"Peer address to use for the startup smart-sync ping"`
	MaxOutbound    int      `long:"maxoutbound" description:"Max number of outbound peers"`

	Proxy         string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser     string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass     string `long:"proxypass" description:"Password for proxy server"`

	HeaderCacheSize uint32 `long:"headercachesize" description:"Maximum number of headers held in the header-sync cache"`
}

// appHomeDir returns the OS-appropriate default application data directory,
// following the same dcrutil.AppDataDir convention the rest of the
// decred/btcsuite family of node daemons uses for their home directories.
func appHomeDir() string {
	return dcrutil.AppDataDir("mwcd", false)
}

// defaultConfig returns a config populated with every default value, prior
// to command-line or config-file overrides being applied.
func defaultConfig() *config {
	return &config{
		HomeDir:         defaultHomeDir,
		ConfigFile:      defaultConfigFile,
		DataDir:         defaultDataDir,
		LogDir:          defaultLogDir,
		DebugLevel:      defaultLogLevel,
		MaxOutbound:     defaultTargetOutboundPeers,
		HeaderCacheSize: defaultHeaderCacheSize,
	}
}

// loadConfig parses command-line flags and then an optional INI config
// file, with the command line taking precedence, following the two-pass
// jessevdk/go-flags convention: a first pre-parse just to find -C/-A, then
// the full parse after the config file has been read into defaults.
func loadConfig() (*config, []string, error) {
	cfg := defaultConfig()

	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	if _, err := preParser.Parse(); err != nil {
		return nil, nil, err
	}

	if preCfg.HomeDir != "" && preCfg.HomeDir != defaultHomeDir {
		cfg.HomeDir = preCfg.HomeDir
		cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
		cfg.DataDir = filepath.Join(cfg.HomeDir, defaultDataDirname)
		cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	parser := flags.NewParser(cfg, flags.Default)
	if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	remaining, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if preCfg.DataDir != "" {
		cfg.DataDir = preCfg.DataDir
	}
	if preCfg.LogDir != "" {
		cfg.LogDir = preCfg.LogDir
	}

	activeNetParams = &mainNetParams
	if cfg.TestNet {
		activeNetParams = &testNetParams
	}

	cfg.DataDir = filepath.Join(cfg.DataDir, netName(activeNetParams))
	cfg.LogDir = filepath.Join(cfg.LogDir, netName(activeNetParams))

	return cfg, remaining, nil
}

// proxyConfig builds a p2p.ProxyConfig from the parsed flags, or nil when
// no proxy was configured.
func (cfg *config) proxyConfig() *p2p.ProxyConfig {
	if cfg.Proxy == "" {
		return nil
	}
	return &p2p.ProxyConfig{
		Addr:     cfg.Proxy,
		Username: cfg.ProxyUser,
		Password: cfg.ProxyPass,
	}
}

// normalizedPreferredPeers trims whitespace from each configured preferred
// peer address and drops empties.
func (cfg *config) normalizedPreferredPeers() []string {
	out := make([]string, 0, len(cfg.PreferredPeers))
	for _, p := range cfg.PreferredPeers {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
