// engine.go provides the package's single initialization entry point.
// Grounded on the teacher's own init.go/precalc.go pairing (attack-table
// precompute separated from a single public init call), generalized to
// cover every process-wide table this package builds: leaper attacks,
// magic sliding-attack tables, Zobrist keys, and evaluation tables.

package corechess

import "sync"

var initOnce sync.Once

// InitEngine precomputes every process-wide, read-only table the engine
// depends on: pawn/knight/king attack steps, magic sliding-attack
// tables, Zobrist keys, and scaled piece-square tables. It is idempotent
// and safe to call from multiple goroutines; only the first call does
// any work.
func InitEngine() {
	initOnce.Do(func() {
		initPawnAttacks()
		initLeaperAttacks()
		movegenLog.Info("leaper attack tables built")
		initMagics()
		movegenLog.Info("magic sliding-attack tables built")
		InitZobristKeys()
		InitEval()
	})
}
