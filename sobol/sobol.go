// SPDX-License-Identifier: MIT

package sobol

import (
	"math/bits"
	"math/rand"
)

// Operation tags used in error wrappers.
const (
	opNew    = "New"
	opDraw   = "Draw"
	opSkip   = "Skip"
	opSkipTo = "SkipTo"
)

// invTwo32 maps a 32-bit integer coordinate onto [0,1).
const invTwo32 = 1.0 / (1 << wordBits)

// Generator produces successive points of a scrambled Sobol sequence.
//
// The k-th draw (0-based) returns Sobol point k+1: the origin is skipped because
// it maps every coordinate to the same corner of the cube. Each coordinate is
// reported at the centre of its 2^-32 cell, so values are strictly inside (0,1).
type Generator struct {
	dim   int
	seed  int64
	pos   uint64   // number of points drawn so far
	max   uint64   // length bound; pos never exceeds it
	x     []uint32 // integer coordinates of Sobol point pos (point 0 is the origin)
	shift []uint32 // per-dimension digital shift; zero when scrambling is off
	dirs  [][wordBits]uint32
}

// New builds a generator for the given dimension and seed.
//
// Implementation:
//   - Stage 1: validate 1 ≤ dimension ≤ MaxDimension.
//   - Stage 2: resolve options and derive the digital shift from seed.
//   - Stage 3: start at the origin so the first Draw yields point #1.
//
// Errors:
//   - ErrInvalidDimension when dimension is out of range.
func New(dimension int, seed int64, opts ...Option) (*Generator, error) {
	if dimension < 1 || dimension > MaxDimension {
		return nil, sobolErrorf(opNew, ErrInvalidDimension, "dimension=%d, supported [1,%d]", dimension, MaxDimension)
	}
	o := gatherOptions(opts...)

	shift := make([]uint32, dimension)
	if o.scramble {
		rng := rand.New(rand.NewSource(seed))
		for d := range shift {
			shift[d] = rng.Uint32()
		}
	}

	g := &Generator{
		dim:   dimension,
		seed:  seed,
		max:   o.maxPoints,
		x:     make([]uint32, dimension),
		shift: shift,
		dirs:  directionTable()[:dimension],
	}
	log.Debugf("New generator: dimension=%d seed=%d maxPoints=%d scramble=%v",
		dimension, seed, o.maxPoints, o.scramble)

	return g, nil
}

// Dimension returns the number of coordinates per point.
func (g *Generator) Dimension() int { return g.dim }

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Position returns the number of points drawn (or skipped) so far.
func (g *Generator) Position() uint64 { return g.pos }

// MaxPoints returns the length bound of the generator.
func (g *Generator) MaxPoints() uint64 { return g.max }

// Remaining returns how many more points can be drawn.
func (g *Generator) Remaining() uint64 { return g.max - g.pos }

// Draw writes the next point into dst and advances the cursor by one.
// A draw is atomic: on error dst and the cursor are left untouched.
//
// Errors:
//   - ErrDimensionMismatch when len(dst) != Dimension().
//   - ErrSequenceExhausted when MaxPoints() points were already produced.
//
// Complexity: O(N).
func (g *Generator) Draw(dst []float64) error {
	if len(dst) != g.dim {
		return sobolErrorf(opDraw, ErrDimensionMismatch, "len(dst)=%d, dimension=%d", len(dst), g.dim)
	}
	if g.pos >= g.max {
		return sobolErrorf(opDraw, ErrSequenceExhausted, "position=%d, maxPoints=%d", g.pos, g.max)
	}

	// gray(n) ⊕ gray(n-1) has a single bit set: the lowest set bit of n.
	n := g.pos + 1
	c := bits.TrailingZeros64(n)
	for d := 0; d < g.dim; d++ {
		g.x[d] ^= g.dirs[d][c]
		dst[d] = (float64(g.x[d]^g.shift[d]) + 0.5) * invTwo32
	}
	g.pos = n

	return nil
}

// Skip advances the cursor by n points without producing them, so the next Draw
// returns the point that would otherwise have come after n more draws.
//
// Errors:
//   - ErrSequenceExhausted when the cursor would pass MaxPoints(); the generator
//     is left unchanged.
//
// Complexity: O(32·N), independent of n.
func (g *Generator) Skip(n uint64) error {
	if n > g.max-g.pos {
		return sobolErrorf(opSkip, ErrSequenceExhausted, "position=%d, skip=%d, maxPoints=%d", g.pos, n, g.max)
	}
	if n == 0 {
		return nil
	}

	target := g.pos + n
	gray := target ^ (target >> 1)
	for d := 0; d < g.dim; d++ {
		var x uint32
		for b, rest := 0, gray; rest != 0; b, rest = b+1, rest>>1 {
			if rest&1 == 1 {
				x ^= g.dirs[d][b]
			}
		}
		g.x[d] = x
	}
	g.pos = target
	log.Tracef("Skip: dimension=%d position=%d", g.dim, target)

	return nil
}

// SkipTo moves the cursor to absolute position k, so the next Draw returns
// Sobol point k+1. The cursor only moves forward.
//
// Errors:
//   - ErrRewind when k < Position().
//   - ErrSequenceExhausted when k > MaxPoints().
func (g *Generator) SkipTo(k uint64) error {
	if k < g.pos {
		return sobolErrorf(opSkipTo, ErrRewind, "position=%d, target=%d", g.pos, k)
	}

	return g.Skip(k - g.pos)
}

// Clone returns an independent generator positioned at the same cursor.
// The direction table is shared; it is read-only.
func (g *Generator) Clone() *Generator {
	cp := *g
	cp.x = append([]uint32(nil), g.x...)
	cp.shift = append([]uint32(nil), g.shift...)

	return &cp
}
