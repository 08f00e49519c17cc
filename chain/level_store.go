// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/mwc-project/mwc-node/consensus/difficulty"
	"github.com/syndtr/goleveldb/leveldb"
)

// Keys under which the three tip pointers live in the backing database.
// The full block/header/MMR storage this key space would normally sit
// alongside belongs to the block-validation layer; LevelStore only
// persists the three scalar tips the sync boundary needs.
var (
	headKey       = []byte("chain/head")
	tailKey       = []byte("chain/tail")
	headerHeadKey = []byte("chain/header-head")
)

// LevelStore is a Store backed directly by goleveldb, the same engine the
// wider database module wraps elsewhere. A lightweight, directly-embedded
// store is enough for the (head, tail, header-head, difficulty-iterator,
// compact) boundary this package actually needs.
type LevelStore struct {
	db *leveldb.DB

	mu         sync.RWMutex
	headerLock sync.Mutex

	difficultyHistory []difficulty.HeaderInfo // newest first, test/seed data
}

// OpenLevelStore opens (creating if absent) a LevelStore at path.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, newError(ErrChainAccess, "open leveldb: "+err.Error())
	}
	return &LevelStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

func encodeTip(t Tip) []byte {
	buf := make([]byte, 8+8+chainhash.HashSize)
	binary.BigEndian.PutUint64(buf[0:8], t.TotalDifficulty)
	binary.BigEndian.PutUint64(buf[8:16], t.Height)
	copy(buf[16:], t.LastBlockHash[:])
	return buf
}

func decodeTip(buf []byte) Tip {
	var t Tip
	if len(buf) < 16+chainhash.HashSize {
		return t
	}
	t.TotalDifficulty = binary.BigEndian.Uint64(buf[0:8])
	t.Height = binary.BigEndian.Uint64(buf[8:16])
	copy(t.LastBlockHash[:], buf[16:])
	return t
}

func (s *LevelStore) readTip(key []byte) (Tip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return Tip{}, nil
	}
	if err != nil {
		return Tip{}, newError(ErrChainAccess, "read tip: "+err.Error())
	}
	return decodeTip(buf), nil
}

// SetHead persists the new chain head. It is the chain-validation layer's
// responsibility to call this in production; exposed here only so tests
// and the cmd wiring can seed a store.
func (s *LevelStore) SetHead(t Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Put(headKey, encodeTip(t), nil); err != nil {
		return newError(ErrChainAccess, "write head: "+err.Error())
	}
	return nil
}

// SetTail persists the oldest retained tip.
func (s *LevelStore) SetTail(t Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Put(tailKey, encodeTip(t), nil); err != nil {
		return newError(ErrChainAccess, "write tail: "+err.Error())
	}
	return nil
}

// SetHeaderHead persists the header chain's tip, distinct from Head since
// header sync can run ahead of body sync.
func (s *LevelStore) SetHeaderHead(t Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Put(headerHeadKey, encodeTip(t), nil); err != nil {
		return newError(ErrChainAccess, "write header head: "+err.Error())
	}
	return nil
}

// SeedDifficultyHistory installs the newest-first HeaderInfo sequence
// DifficultyIter will replay, for tests and initial bring-up before real
// header validation populates it.
func (s *LevelStore) SeedDifficultyHistory(history []difficulty.HeaderInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficultyHistory = history
}

// Head implements Store.
func (s *LevelStore) Head() (Tip, error) {
	return s.readTip(headKey)
}

// Tail implements Store.
func (s *LevelStore) Tail() (Tip, error) {
	return s.readTip(tailKey)
}

// TryHeaderHead implements Store. It attempts to take headerLock within
// deadline; on timeout it returns (Tip{}, false, nil) rather than an
// error — the header lock is expected to be held for minutes during
// txhashset validation, and that is not itself a failure.
func (s *LevelStore) TryHeaderHead(ctx context.Context, deadline time.Duration) (Tip, bool, error) {
	acquired := make(chan struct{})
	go func() {
		s.headerLock.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		defer s.headerLock.Unlock()
		tip, err := s.readTip(headerHeadKey)
		if err != nil {
			return Tip{}, false, err
		}
		return tip, true, nil
	case <-time.After(deadline):
		return Tip{}, false, nil
	case <-ctx.Done():
		return Tip{}, false, ctx.Err()
	}
}

// DifficultyIter implements Store, replaying the seeded newest-first
// history. A real implementation streams this lazily off the persisted
// header chain.
func (s *LevelStore) DifficultyIter() (HeaderInfoIterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]difficulty.HeaderInfo, len(s.difficultyHistory))
	copy(cp, s.difficultyHistory)
	return NewSliceIterator(cp), nil
}

// Compact implements Store as a no-op: goleveldb compacts its own LSM
// tree lazily, so there is no analogous opportunistic maintenance step
// beyond what the engine already does internally.
func (s *LevelStore) Compact() error {
	return nil
}
