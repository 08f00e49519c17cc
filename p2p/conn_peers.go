// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/decred/dcrd/addrmgr/v2"
	"github.com/decred/dcrd/connmgr/v3"
	socks "github.com/decred/go-socks/socks"
)

// ProxyConfig optionally routes outbound peer dials through a SOCKS proxy,
// the conventional way the decred/btcsuite family supports Tor.
type ProxyConfig struct {
	Addr     string
	Username string
	Password string
}

// ConnPeers backs the Peers boundary with a real outbound connection
// manager and address book: decred/dcrd/connmgr/v3 owns dialing and
// retries, decred/dcrd/addrmgr/v2 owns peer discovery persistence.
// EnoughOutboundPeers and the other Peers queries are answered from the
// tracked peer map.
type ConnPeers struct {
	mu    sync.RWMutex
	peers map[string]*trackedPeer

	connMgr *connmgr.ConnManager
	addrMgr *addrmgr.AddrManager

	targetOutbound uint32
}

type trackedPeer struct {
	addr            net.Addr
	height          uint64
	totalDifficulty uint64
	conn            net.Conn
}

func (t *trackedPeer) Height() uint64          { return t.height }
func (t *trackedPeer) TotalDifficulty() uint64 { return t.totalDifficulty }
func (t *trackedPeer) Addr() net.Addr          { return t.addr }

func (t *trackedPeer) SendPing(difficulty uint64, height uint64) error {
	if t.conn == nil {
		return fmt.Errorf("p2p: peer %s has no active connection", t.addr)
	}
	return NewWSPingClient(t.addr.String()).SendPing(difficulty, height)
}

// NewConnPeers builds a ConnPeers with the given outbound target and
// optional SOCKS proxy, wiring connmgr's Dial func through the proxy when
// configured.
func NewConnPeers(dataDir string, targetOutbound uint32, proxy *ProxyConfig) (*ConnPeers, error) {
	cp := &ConnPeers{
		peers:          make(map[string]*trackedPeer),
		addrMgr:        addrmgr.New(dataDir, net.LookupIP),
		targetOutbound: targetOutbound,
	}

	dial := net.Dial
	if proxy != nil {
		proxyDialer := &socks.Proxy{
			Addr:     proxy.Addr,
			Username: proxy.Username,
			Password: proxy.Password,
		}
		dial = func(network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}
	}

	cfg := &connmgr.Config{
		TargetOutbound: targetOutbound,
		RetryDuration:  10 * time.Second,
		Dial: func(addr net.Addr) (net.Conn, error) {
			return dial(addr.Network(), addr.String())
		},
		OnConnection: func(req *connmgr.ConnReq, conn net.Conn) {
			cp.mu.Lock()
			defer cp.mu.Unlock()
			if p, ok := cp.peers[conn.RemoteAddr().String()]; ok {
				p.conn = conn
			}
		},
	}
	mgr, err := connmgr.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("p2p: connmgr.New: %w", err)
	}
	cp.connMgr = mgr
	return cp, nil
}

// Start begins outbound connection management.
func (cp *ConnPeers) Start() { cp.connMgr.Start() }

// Stop halts outbound connection management.
func (cp *ConnPeers) Stop() { cp.connMgr.Stop() }

// AddDiscovered records a peer address learned from a connected peer, so
// future reconnects/selection can draw on it.
func (cp *ConnPeers) AddDiscovered(addr net.Addr, source net.Addr) {
	cp.addrMgr.AddAddress(addrmgr.NewNetAddress(addr), addrmgr.NewNetAddress(source))
}

// UpdatePeerState records a peer's latest self-reported chain state,
// called from the peer protocol handler on each received ping/header
// announcement.
func (cp *ConnPeers) UpdatePeerState(addr net.Addr, height, totalDifficulty uint64) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	key := addr.String()
	p, ok := cp.peers[key]
	if !ok {
		p = &trackedPeer{addr: addr}
		cp.peers[key] = p
	}
	p.height = height
	p.totalDifficulty = totalDifficulty
}

// MostWorkPeer implements Peers.
func (cp *ConnPeers) MostWorkPeer() PeerInfo {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	var best *trackedPeer
	for _, p := range cp.peers {
		if best == nil || p.totalDifficulty > best.totalDifficulty {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	return best
}

// MoreOrSameWorkPeers implements Peers.
func (cp *ConnPeers) MoreOrSameWorkPeers(localDifficulty uint64) (int, error) {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	n := 0
	for _, p := range cp.peers {
		if p.totalDifficulty >= localDifficulty {
			n++
		}
	}
	return n, nil
}

// EnoughOutboundPeers implements Peers.
func (cp *ConnPeers) EnoughOutboundPeers() bool {
	cp.mu.RLock()
	defer cp.mu.RUnlock()
	return uint32(len(cp.peers)) >= cp.targetOutbound
}

// GetConnectedPeer implements Peers.
func (cp *ConnPeers) GetConnectedPeer(addr string) (PeerHandle, bool) {
	cp.mu.RLock()
	defer cp.mu.RUnlock()
	p, ok := cp.peers[addr]
	if !ok || p.conn == nil {
		return nil, false
	}
	return p, true
}
