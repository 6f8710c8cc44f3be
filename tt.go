// tt.go implements the transposition table: a replace-always hash table
// of packed entries keyed by the full Zobrist hash, sized in mebibytes.
// Grounded on original_source/src/transposition.rs's entry layout and
// replace policy, enriched with puzpuzpuz/xsync/v4's atomic counters for
// lock-free hit/miss/store statistics per SPEC_FULL.md's domain stack,
// since the table itself stays worker-local per spec §5 but stats are
// exposed for an eventual SMP extension without pre-emptively locking
// the hot path.

package corechess

import "github.com/puzpuzpuz/xsync/v4"

// NodeType classifies how a stored score bounds the true value.
type NodeType int

const (
	NodePV NodeType = iota
	NodeCut
	NodeAll
	NodeTerminal
)

// ttEntry is one slot: the 8-byte key plus the payload. Its Go layout is
// larger than the nominal entrySize (NodeType is an int).
type ttEntry struct {
	key       uint64
	move      Move
	depth     int16
	nodeType  NodeType
	score     int32 // low 16 bits dropped before storage
	writePly  int32
}

const entrySize = 24 // nominal 8 (key) + 16 (payload), used only to size the table

// TranspositionTable is a fixed-size, zeroed, replace-always hash table.
type TranspositionTable struct {
	entries []ttEntry
	pow2    bool
	mask    uint64

	hits   *xsync.Counter
	misses *xsync.Counter
	stores *xsync.Counter
}

// NewTranspositionTable allocates a table sized in mebibytes.
func NewTranspositionTable(sizeMiB int) *TranspositionTable {
	count := (sizeMiB * 1024 * 1024) / entrySize
	if count < 1 {
		count = 1
	}
	t := &TranspositionTable{
		entries: make([]ttEntry, count),
		hits:    xsync.NewCounter(),
		misses:  xsync.NewCounter(),
		stores:  xsync.NewCounter(),
	}
	if count&(count-1) == 0 {
		t.pow2 = true
		t.mask = uint64(count - 1)
	}
	return t
}

func (t *TranspositionTable) index(hash uint64) uint64 {
	if t.pow2 {
		return hash & t.mask
	}
	return hash % uint64(len(t.entries))
}

// Prefetch is a no-op hint point matching spec §4.J's prefetch step; Go
// has no portable cache-prefetch intrinsic, so this only documents the
// call site for a future architecture-specific implementation.
func (t *TranspositionTable) Prefetch(hash uint64) {
	_ = t.index(hash)
}

// Probe returns the slot's payload and true iff its key matches hash
// exactly, the only collision check the table performs: the slot index
// is derived from the hash by mask or modulo, and the full-key
// comparison separates different positions that share a slot.
func (t *TranspositionTable) Probe(hash uint64) (move Move, depth int, nodeType NodeType, score int64, ok bool) {
	e := &t.entries[t.index(hash)]
	if e.key != hash {
		t.misses.Inc()
		ttLog.Debugf("miss hash %x", hash)
		return NullMove, 0, 0, 0, false
	}
	t.hits.Inc()
	ttLog.Debugf("hit hash %x depth %d type %d", hash, e.depth, e.nodeType)
	return e.move, int(e.depth), e.nodeType, int64(e.score) << 16, true
}

// Store always overwrites the slot's prior contents. score carries full
// Go-int precision (mate scores comfortably exceed int32's range) and has
// its low 16 bits dropped only when packed into the entry, matching
// the "low-precision evaluation" the spec's entry layout calls for.
func (t *TranspositionTable) Store(hash uint64, move Move, depth int, nodeType NodeType, score int64, ply int) {
	t.entries[t.index(hash)] = ttEntry{
		key:      hash,
		move:     move,
		depth:    int16(depth),
		nodeType: nodeType,
		score:    int32(score >> 16),
		writePly: int32(ply),
	}
	t.stores.Inc()
}

// Stats returns cumulative probe hits, misses, and stores since the
// table was allocated.
func (t *TranspositionTable) Stats() (hits, misses, stores int64) {
	return t.hits.Value(), t.misses.Value(), t.stores.Value()
}

// Clear zeroes every slot, used between unrelated searches that should
// not see stale entries (e.g. test fixtures).
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
}
