// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import (
	"context"
	"time"

	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
)

// minPeers is the minimum number of connected peers the orchestrator waits
// for before attempting any sync stage.
const minPeers = 3

// headerLockMaxRetries bounds how many consecutive header-lock acquisition
// timeouts the main loop tolerates outside the txhashset phase before
// surfacing a diagnostic error. The txhashset phase holds the header lock
// for its own, much longer duration and is exempt from this bound.
const headerLockMaxRetries = 60

// Config bundles the tunables RunSync needs beyond the collaborators
// themselves: the header-sync cadence and the cache size handed to
// HeaderSync, plus the preferred peers smart sync pings once at startup.
type Config struct {
	DurationSyncLong   time.Duration
	DurationSyncShort  time.Duration
	HeaderCacheSize    uint32
	PreferredPeers     []string
	StateSyncThreshold uint64
}

// Handle is returned by RunSync so the caller can wait for the orchestrator
// goroutine to exit after requesting a stop.
type Handle struct {
	done chan struct{}
}

// Wait blocks until the orchestrator goroutine has returned.
func (h *Handle) Wait() {
	<-h.done
}

// Runner is the sync orchestrator: a long-lived loop that brings a node
// from whatever height it started at to the network's current head by
// driving header sync, state sync, and body sync against a changing peer
// pool, using a single shared Status to report progress to callers.
type Runner struct {
	cfg   Config
	state *State
	peers p2p.Peers
	store chain.Store
	stop  *StopState

	headerSync *HeaderSync
	bodySync   *BodySync
	stateSync  *StateSync

	highestHeight uint64

	// headerLockRetries counts consecutive TryHeaderHead timeouts since
	// the last successful acquisition; it resets to zero on every
	// success and is checked against headerLockMaxRetries.
	headerLockRetries int

	// smartSyncDone latches true once a smart-sync ping attempt has been
	// made, successful or not: smart sync is a single-shot optimization
	// at startup, never retried for the life of the runner.
	smartSyncDone bool
}

// NewRunner constructs a Runner from its collaborators. state and stop are
// shared with the caller so external code can observe Status and request
// shutdown.
func NewRunner(cfg Config, state *State, peers p2p.Peers, store chain.Store, stop *StopState) *Runner {
	return &Runner{
		cfg:        cfg,
		state:      state,
		peers:      peers,
		store:      store,
		stop:       stop,
		headerSync: NewHeaderSync(state, peers, store),
		bodySync:   NewBodySync(state, peers, store, cfg.StateSyncThreshold),
		stateSync:  NewStateSync(state, peers, store),
	}
}

// RunSync launches the orchestrator loop on its own goroutine and returns a
// Handle the caller can Wait on after calling stop.Stop(). state, peers,
// store, and stop are shared with the rest of the node; cfg tunes the
// header-sync cadence and the startup smart-sync attempt.
func RunSync(cfg Config, state *State, peers p2p.Peers, store chain.Store, stop *StopState) *Handle {
	r := NewRunner(cfg, state, peers, store, stop)
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		r.run()
	}()
	return h
}

// run is the orchestrator's main loop. It blocks until the shared
// StopState is set.
func (r *Runner) run() {
	if !r.waitForMinPeers() {
		r.state.Update(Shutdown{})
		return
	}

	time.Sleep(1000 * time.Millisecond)

	for {
		if r.stop.IsStopped() {
			r.state.Update(Shutdown{})
			return
		}
		time.Sleep(10 * time.Millisecond)

		if err := r.tick(); err != nil {
			log.Errorf("sync: tick failed: %v", err)
			time.Sleep(1 * time.Second)
			continue
		}
	}
}

// waitForMinPeers blocks until enough peers are connected to make syncing
// meaningful, the wait times out, or the stop flag is set. It reports false
// only when the stop flag fires before any of the other exit conditions are
// met.
//
// The wait-for-peers window is 30s when the shared Status was already
// constructed as AwaitingPeers{Initial: true} (the case on a cold start),
// else 3s. Exit happens on whichever of three conditions comes first: more
// than minPeers peers at or above the local difficulty, zero peers but
// enough outbound connections and a non-zero local difficulty (the node
// is caught up and its one pending handshake will supply a peer shortly),
// or the wait simply timing out — a node with real peers that are
// individually behind the local tip must still leave AwaitingPeers and
// proceed into the sync loop rather than block here forever.
func (r *Runner) waitForMinPeers() bool {
	initial := false
	if ap, ok := r.state.Status().(AwaitingPeers); ok {
		initial = ap.Initial
	}

	waitSecs := 3
	if initial {
		waitSecs = 30
	}

	head, err := r.store.Head()
	if err != nil {
		log.Errorf("sync: head unavailable while waiting for peers: %v", err)
	}

	n := 0
	for {
		if r.stop.IsStopped() {
			return false
		}

		wp, err := r.peers.MoreOrSameWorkPeers(head.TotalDifficulty)
		if err != nil {
			log.Errorf("sync: peer count lookup failed: %v", err)
		}

		if wp > minPeers ||
			(wp == 0 && r.peers.EnoughOutboundPeers() && head.TotalDifficulty > 0) ||
			n > waitSecs {
			return true
		}

		time.Sleep(1 * time.Second)
		n++
	}
}

// tick runs one full pass of the sync loop: refresh the highest known
// height, decide whether syncing is needed at all, perform the one-shot
// smart-sync ping, acquire the header lock, and dispatch to whichever
// stage delegate the current state calls for.
func (r *Runner) tick() error {
	peer := r.peers.MostWorkPeer()
	if peer != nil && peer.Height() > r.highestHeight {
		r.highestHeight = peer.Height()
	}

	syncing, err := r.needsSyncing()
	if err != nil {
		return err
	}
	if !syncing {
		r.state.Update(NoSync{})
		if err := r.store.Compact(); err != nil {
			log.Warnf("sync: compact failed: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
		return nil
	}

	r.smartSync()

	head, err := r.store.Head()
	if err != nil {
		return newError(ErrChainAccess, "head: %v", err)
	}
	tail, err := r.store.Tail()
	if err != nil {
		return newError(ErrChainAccess, "tail: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	headerHead, ok, err := r.store.TryHeaderHead(ctx, time.Second)
	cancel()
	if err != nil {
		return newError(ErrChainAccess, "header head: %v", err)
	}
	if !ok {
		r.headerLockRetries++
		if IsTxHashsetPhase(r.state.Status()) {
			// The txhashset phase legitimately holds the header lock for
			// a long time; it is exempt from the retry bound.
			return nil
		}
		if r.headerLockRetries > headerLockMaxRetries {
			return newError(ErrHeaderLockTimeout,
				"header head lock not acquired in %d consecutive attempts", r.headerLockRetries)
		}
		return nil
	}
	r.headerLockRetries = 0

	if err := r.headerSync.CheckRun(
		headerHead, r.highestHeight,
		r.cfg.DurationSyncLong, r.cfg.DurationSyncShort, r.cfg.HeaderCacheSize,
	); err != nil {
		return err
	}

	if IsTxHashsetPhase(r.state.Status()) {
		return r.stateSync.CheckRun(headerHead, head, tail, r.highestHeight)
	}

	if headerHead.Height < r.highestHeight {
		// Headers are still catching up to the network's known height;
		// body sync would only be fetching blocks it will have to discard
		// once the real header chain arrives, so skip this tick entirely.
		return nil
	}

	needsState, err := r.bodySync.CheckRun(head, r.highestHeight)
	if err != nil {
		return err
	}
	if needsState {
		return r.stateSync.CheckRun(headerHead, head, tail, r.highestHeight)
	}

	return nil
}

// needsSyncing implements the hysteresis policy that decides whether the
// node should (keep) sync(ing). Once already syncing, only a peer with
// strictly more work keeps it syncing; once caught up, it only re-enters sync
// when a peer pulls ahead by more than the sum of the last five window
// difficulties, so small, expected difficulty jitter around the tip never
// flaps the node in and out of sync mode.
func (r *Runner) needsSyncing() (bool, error) {
	head, err := r.store.Head()
	if err != nil {
		return false, newError(ErrChainAccess, "head: %v", err)
	}

	peer := r.peers.MostWorkPeer()
	if peer == nil {
		return r.state.IsSyncing(), nil
	}
	peerDiff := peer.TotalDifficulty()

	if r.state.IsSyncing() {
		return peerDiff > head.TotalDifficulty, nil
	}

	threshold, err := r.recentDifficultyThreshold()
	if err != nil {
		return false, err
	}
	return peerDiff > head.TotalDifficulty+threshold, nil
}

// recentDifficultyThreshold sums the difficulty of the last five entries
// in the difficulty window, giving needs_syncing a threshold that scales
// with the network's current difficulty rather than a fixed constant.
func (r *Runner) recentDifficultyThreshold() (uint64, error) {
	it, err := r.store.DifficultyIter()
	if err != nil {
		return 0, newError(ErrChainAccess, "difficulty iter: %v", err)
	}

	var sum uint64
	for i := 0; i < 5; i++ {
		hi, ok := it.Next()
		if !ok {
			break
		}
		sum += hi.Difficulty
	}
	return sum, nil
}

// smartSync pings every connected preferred peer once, advertising the
// node's own best-known difficulty so a peer that already agrees can skip
// re-announcing its chain state. It is a single-attempt optimization: once
// smartSyncDone latches, this is a no-op for the rest of the runner's
// life, regardless of how many pings succeeded.
func (r *Runner) smartSync() {
	if r.smartSyncDone {
		return
	}
	r.smartSyncDone = true
	r.doSmartSync()
}

func (r *Runner) doSmartSync() {
	head, err := r.store.Head()
	if err != nil {
		log.Warnf("sync: smart sync skipped, head unavailable: %v", err)
		return
	}

	for _, addr := range r.cfg.PreferredPeers {
		handle, ok := r.peers.GetConnectedPeer(addr)
		if !ok {
			continue
		}
		if err := handle.SendPing(head.TotalDifficulty, head.Height); err != nil {
			log.Debugf("sync: smart sync ping to %s failed: %v", addr, err)
		}
	}
}
