// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package p2p defines the boundary the sync orchestrator consumes from the
// peer set. Message framing and the handshake protocol itself are handled
// by an external collaborator; this package only carries peer-selection
// and connection-health information.
package p2p

import "net"

// PeerInfo is the read-only view of one peer's advertised chain state.
type PeerInfo interface {
	Height() uint64
	TotalDifficulty() uint64
	Addr() net.Addr
}

// PeerHandle is a connected peer capable of receiving the smart-sync ping.
type PeerHandle interface {
	PeerInfo

	// SendPing forwards the locally observed max difficulty and height
	// to the peer, used once by smart sync.
	SendPing(difficulty uint64, height uint64) error
}

// Peers is the peer-set boundary the orchestrator depends on.
type Peers interface {
	// MostWorkPeer returns the connected peer advertising the greatest
	// total difficulty, or nil if no peers are connected.
	MostWorkPeer() PeerInfo

	// MoreOrSameWorkPeers returns the count of connected peers whose
	// advertised total difficulty is >= the local chain's.
	MoreOrSameWorkPeers(localDifficulty uint64) (int, error)

	// EnoughOutboundPeers reports whether the node has established
	// enough outbound connections to trust gossip without more peers.
	EnoughOutboundPeers() bool

	// GetConnectedPeer looks up a connected peer by address, for smart
	// sync's preferred-peers list.
	GetConnectedPeer(addr string) (PeerHandle, bool)
}
