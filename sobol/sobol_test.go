package sobol_test

import (
	"testing"

	"github.com/katalvlaran/qmcpaths/sobol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 19910405

// drawN draws n points from g and returns them row by row.
func drawN(t *testing.T, g *sobol.Generator, n int) [][]float64 {
	t.Helper()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, g.Dimension())
		require.NoError(t, g.Draw(out[i]))
	}

	return out
}

// TestNew_InvalidDimension ensures out-of-range dimensions are rejected.
func TestNew_InvalidDimension(t *testing.T) {
	_, err := sobol.New(0, testSeed)
	require.ErrorIs(t, err, sobol.ErrInvalidDimension)

	_, err = sobol.New(sobol.MaxDimension+1, testSeed)
	require.ErrorIs(t, err, sobol.ErrInvalidDimension)

	g, err := sobol.New(sobol.MaxDimension, testSeed)
	require.NoError(t, err)
	require.Equal(t, sobol.MaxDimension, g.Dimension())
}

// TestDraw_UnscrambledPrefix checks the first points against the textbook
// Gray-code Sobol sequence in two dimensions.
func TestDraw_UnscrambledPrefix(t *testing.T) {
	g, err := sobol.New(2, testSeed, sobol.WithoutScrambling())
	require.NoError(t, err)

	want := [][]float64{
		{0.5, 0.5},
		{0.75, 0.25},
		{0.25, 0.75},
		{0.375, 0.375},
	}
	got := drawN(t, g, len(want))
	for i := range want {
		for d := range want[i] {
			assert.InDelta(t, want[i][d], got[i][d], 1e-9, "point %d dim %d", i, d)
		}
	}
}

// TestDraw_Deterministic verifies identical streams for identical (seed, dimension).
func TestDraw_Deterministic(t *testing.T) {
	a, err := sobol.New(11, testSeed)
	require.NoError(t, err)
	b, err := sobol.New(11, testSeed)
	require.NoError(t, err)

	require.Equal(t, drawN(t, a, 64), drawN(t, b, 64))
}

// TestDraw_SeedChangesStream verifies that the digital shift depends on the seed.
func TestDraw_SeedChangesStream(t *testing.T) {
	a, err := sobol.New(4, 1)
	require.NoError(t, err)
	b, err := sobol.New(4, 2)
	require.NoError(t, err)

	require.NotEqual(t, drawN(t, a, 8), drawN(t, b, 8))
}

// TestDraw_OpenUnitInterval ensures every coordinate lies strictly inside (0,1).
func TestDraw_OpenUnitInterval(t *testing.T) {
	for _, opts := range [][]sobol.Option{nil, {sobol.WithoutScrambling()}} {
		g, err := sobol.New(sobol.MaxDimension, testSeed, opts...)
		require.NoError(t, err)
		for _, pt := range drawN(t, g, 1024) {
			for d, u := range pt {
				require.Greater(t, u, 0.0, "dim %d", d)
				require.Less(t, u, 1.0, "dim %d", d)
			}
		}
	}
}

// TestDraw_Stratification checks the (0,1)-sequence property per coordinate:
// an aligned block of 2^m points puts exactly one point in every interval of
// width 2^-m, with or without scrambling.
func TestDraw_Stratification(t *testing.T) {
	const m = 6
	const block = 1 << m

	for _, opts := range [][]sobol.Option{nil, {sobol.WithoutScrambling()}} {
		g, err := sobol.New(sobol.MaxDimension, testSeed, opts...)
		require.NoError(t, err)
		// Draw k returns point k+1; skip to point 2^m so the block is aligned.
		require.NoError(t, g.Skip(block-1))

		pts := drawN(t, g, block)
		for d := 0; d < g.Dimension(); d++ {
			seen := make([]int, block)
			for _, pt := range pts {
				seen[int(pt[d]*block)]++
			}
			for cell, n := range seen {
				require.Equal(t, 1, n, "dim %d cell %d", d, cell)
			}
		}
	}
}

// TestSkip_MatchesSequentialDraws verifies the closed-form skip-ahead against
// drawing the skipped points one by one.
func TestSkip_MatchesSequentialDraws(t *testing.T) {
	for _, skip := range []uint64{0, 1, 2, 7, 8, 31, 100, 1023} {
		ref, err := sobol.New(5, testSeed)
		require.NoError(t, err)
		want := drawN(t, ref, int(skip)+3)[skip:]

		g, err := sobol.New(5, testSeed)
		require.NoError(t, err)
		require.NoError(t, g.Skip(skip))
		require.Equal(t, skip, g.Position())
		require.Equal(t, want, drawN(t, g, 3), "skip=%d", skip)
	}
}

// TestSkip_Incremental verifies that consecutive skips compose.
func TestSkip_Incremental(t *testing.T) {
	a, err := sobol.New(3, testSeed)
	require.NoError(t, err)
	b, err := sobol.New(3, testSeed)
	require.NoError(t, err)

	_ = drawN(t, a, 5)
	require.NoError(t, a.Skip(12))
	require.NoError(t, b.Skip(17))
	require.Equal(t, drawN(t, b, 4), drawN(t, a, 4))
}

// TestSkipTo_Absolute verifies absolute positioning and the no-rewind rule.
func TestSkipTo_Absolute(t *testing.T) {
	ref, err := sobol.New(3, testSeed)
	require.NoError(t, err)
	want := drawN(t, ref, 12)[9:]

	g, err := sobol.New(3, testSeed)
	require.NoError(t, err)
	_ = drawN(t, g, 2)
	require.NoError(t, g.SkipTo(9))
	require.Equal(t, want, drawN(t, g, 3))

	require.ErrorIs(t, g.SkipTo(4), sobol.ErrRewind)
	require.Equal(t, uint64(12), g.Position())
}

// TestClone_Independent ensures a clone continues the same stream without
// sharing cursor state with its origin.
func TestClone_Independent(t *testing.T) {
	g, err := sobol.New(4, testSeed)
	require.NoError(t, err)
	_ = drawN(t, g, 3)

	c := g.Clone()
	want := drawN(t, g, 5)
	require.Equal(t, uint64(3), c.Position())
	require.Equal(t, want, drawN(t, c, 5))
}

// TestDraw_Exhausted verifies the length bound is a hard error and that a failed
// draw leaves the destination untouched.
func TestDraw_Exhausted(t *testing.T) {
	g, err := sobol.New(2, testSeed, sobol.WithMaxPoints(3))
	require.NoError(t, err)
	_ = drawN(t, g, 3)
	require.Zero(t, g.Remaining())

	dst := []float64{-1, -1}
	err = g.Draw(dst)
	require.ErrorIs(t, err, sobol.ErrSequenceExhausted)
	require.Equal(t, []float64{-1, -1}, dst)
	require.Equal(t, uint64(3), g.Position())
}

// TestSkip_Exhausted verifies skip-ahead cannot pass the length bound.
func TestSkip_Exhausted(t *testing.T) {
	g, err := sobol.New(2, testSeed, sobol.WithMaxPoints(10))
	require.NoError(t, err)

	require.ErrorIs(t, g.Skip(11), sobol.ErrSequenceExhausted)
	require.Zero(t, g.Position())

	require.NoError(t, g.Skip(10))
	require.ErrorIs(t, g.Draw(make([]float64, 2)), sobol.ErrSequenceExhausted)
}

// TestDraw_BufferMismatch ensures a wrong-sized buffer is rejected.
func TestDraw_BufferMismatch(t *testing.T) {
	g, err := sobol.New(3, testSeed)
	require.NoError(t, err)

	require.ErrorIs(t, g.Draw(make([]float64, 2)), sobol.ErrDimensionMismatch)
	require.Zero(t, g.Position())
}

// TestWithMaxPoints_Panics ensures nonsensical bounds are programmer errors.
func TestWithMaxPoints_Panics(t *testing.T) {
	assert.Panics(t, func() { sobol.WithMaxPoints(0) })
	assert.Panics(t, func() { sobol.WithMaxPoints(sobol.MaxPointsLimit + 1) })
	assert.NotPanics(t, func() { sobol.WithMaxPoints(sobol.MaxPointsLimit) })
}
