// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "github.com/mwc-project/mwc-node/chaincfg"

// activeNetParams is a pointer to the parameters specific to the currently
// active network.
var activeNetParams = &mainNetParams

// params groups a chaincfg.Params with the node-process specifics that
// don't belong in the consensus-critical struct itself.
type params struct {
	*chaincfg.Params
	rpcPort string
}

// mainNetParams contains parameters specific to the production network.
var mainNetParams = params{
	Params:  chaincfg.MainNetParams,
	rpcPort: "3415",
}

// testNetParams contains parameters specific to the test network.
var testNetParams = params{
	Params:  chaincfg.TestNetParams,
	rpcPort: "13415",
}

// netName returns the directory-safe name used for this network's data and
// log subdirectories.
func netName(p *params) string {
	return p.Net.String()
}
