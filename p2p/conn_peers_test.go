// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"net"
	"testing"
)

func tcpAddr(s string) *net.TCPAddr {
	addr, err := net.ResolveTCPAddr("tcp", s)
	if err != nil {
		panic(err)
	}
	return addr
}

func newTestConnPeers(targetOutbound uint32) *ConnPeers {
	return &ConnPeers{
		peers:          make(map[string]*trackedPeer),
		targetOutbound: targetOutbound,
	}
}

func TestMostWorkPeerReturnsHighestDifficulty(t *testing.T) {
	cp := newTestConnPeers(0)
	if cp.MostWorkPeer() != nil {
		t.Fatalf("MostWorkPeer on empty set = %v, want nil", cp.MostWorkPeer())
	}

	cp.UpdatePeerState(tcpAddr("127.0.0.1:1001"), 10, 100)
	cp.UpdatePeerState(tcpAddr("127.0.0.1:1002"), 20, 300)
	cp.UpdatePeerState(tcpAddr("127.0.0.1:1003"), 15, 200)

	best := cp.MostWorkPeer()
	if best == nil {
		t.Fatal("MostWorkPeer = nil, want a peer")
	}
	if best.TotalDifficulty() != 300 {
		t.Fatalf("MostWorkPeer.TotalDifficulty() = %d, want 300", best.TotalDifficulty())
	}
}

func TestUpdatePeerStateOverwritesExisting(t *testing.T) {
	cp := newTestConnPeers(0)
	addr := tcpAddr("127.0.0.1:2001")

	cp.UpdatePeerState(addr, 5, 50)
	cp.UpdatePeerState(addr, 6, 90)

	if len(cp.peers) != 1 {
		t.Fatalf("len(peers) = %d, want 1", len(cp.peers))
	}
	best := cp.MostWorkPeer()
	if best.TotalDifficulty() != 90 || best.Height() != 6 {
		t.Fatalf("peer state = (%d, %d), want (6, 90)", best.Height(), best.TotalDifficulty())
	}
}

func TestMoreOrSameWorkPeers(t *testing.T) {
	cp := newTestConnPeers(0)
	cp.UpdatePeerState(tcpAddr("127.0.0.1:3001"), 1, 100)
	cp.UpdatePeerState(tcpAddr("127.0.0.1:3002"), 1, 200)
	cp.UpdatePeerState(tcpAddr("127.0.0.1:3003"), 1, 50)

	n, err := cp.MoreOrSameWorkPeers(100)
	if err != nil {
		t.Fatalf("MoreOrSameWorkPeers: %v", err)
	}
	if n != 2 {
		t.Fatalf("MoreOrSameWorkPeers(100) = %d, want 2", n)
	}
}

func TestEnoughOutboundPeers(t *testing.T) {
	cp := newTestConnPeers(2)
	if cp.EnoughOutboundPeers() {
		t.Fatal("EnoughOutboundPeers() = true with no peers, want false")
	}
	cp.UpdatePeerState(tcpAddr("127.0.0.1:4001"), 1, 1)
	if cp.EnoughOutboundPeers() {
		t.Fatal("EnoughOutboundPeers() = true with 1 peer and target 2, want false")
	}
	cp.UpdatePeerState(tcpAddr("127.0.0.1:4002"), 1, 1)
	if !cp.EnoughOutboundPeers() {
		t.Fatal("EnoughOutboundPeers() = false with 2 peers and target 2, want true")
	}
}

func TestGetConnectedPeerRequiresActiveConnection(t *testing.T) {
	cp := newTestConnPeers(0)
	addr := tcpAddr("127.0.0.1:5001")
	cp.UpdatePeerState(addr, 1, 1)

	if _, ok := cp.GetConnectedPeer(addr.String()); ok {
		t.Fatal("GetConnectedPeer found a peer with no active conn")
	}

	cp.mu.Lock()
	cp.peers[addr.String()].conn = &net.TCPConn{}
	cp.mu.Unlock()

	handle, ok := cp.GetConnectedPeer(addr.String())
	if !ok || handle == nil {
		t.Fatal("GetConnectedPeer did not find peer with an active conn")
	}

	if _, ok := cp.GetConnectedPeer("127.0.0.1:9999"); ok {
		t.Fatal("GetConnectedPeer found a peer for an unknown address")
	}
}
