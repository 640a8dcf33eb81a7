// internal/bingo/generator.go
//
// Random number generation for boards and calls.
//
// Every generation call (one board, one move) gets its own *rand.Rand so
// concurrent requests never share a source. Seeds come from crypto/rand, or
// from a seeded sequence when a deterministic run is wanted (tests, replays).

package bingo

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

const (
	// ColumnWidth is how many numbers each column range spans.
	ColumnWidth = 15
	// ColumnSize is how many numbers each board column holds.
	ColumnSize = 5
	// MaxNumber is the highest number that can be called.
	MaxNumber = 75
	// DefaultColumnAttempts is the draw budget per column.
	DefaultColumnAttempts = 15
)

// Source is the random source the generators draw from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomInRange returns a number uniformly distributed in [base, base+14].
func RandomInRange(src Source, base int) int {
	return src.Intn(ColumnWidth) + base
}

// Generator produces boards and moves, one independent source per call.
type Generator struct {
	attempts int

	mu    sync.Mutex
	seeds *rand.Rand // nil means crypto seeds
}

// NewGenerator returns a Generator seeding every call from crypto/rand.
func NewGenerator(attempts int) *Generator {
	if attempts <= 0 {
		attempts = DefaultColumnAttempts
	}
	return &Generator{attempts: attempts}
}

// NewSeededGenerator returns a Generator whose sequence of per-call seeds
// is fully determined by seed.
func NewSeededGenerator(seed int64, attempts int) *Generator {
	g := NewGenerator(attempts)
	g.seeds = rand.New(rand.NewSource(seed))
	return g
}

// Attempts reports the per-column draw budget.
func (g *Generator) Attempts() int { return g.attempts }

// Board assembles a fresh card for gamerID.
func (g *Generator) Board(gamerID int64) (Board, error) {
	src, err := g.source()
	if err != nil {
		return Board{}, err
	}
	return AssembleBoard(src, gamerID, g.attempts)
}

// Move draws a call for gameID. With unique set, numbers already in called
// are never drawn again.
func (g *Generator) Move(gameID int64, called map[int]bool, unique bool) (Move, error) {
	src, err := g.source()
	if err != nil {
		return Move{}, err
	}
	return DrawMove(src, gameID, called, unique)
}

func (g *Generator) source() (*rand.Rand, error) {
	if g.seeds == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		return rand.New(rand.NewSource(seed)), nil
	}
	g.mu.Lock()
	seed := g.seeds.Int63()
	g.mu.Unlock()
	return rand.New(rand.NewSource(seed)), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
