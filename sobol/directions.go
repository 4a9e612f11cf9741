// SPDX-License-Identifier: MIT

package sobol

import "sync"

// wordBits is the width of the integer Sobol representation.
const wordBits = 32

// primitive describes one dimension beyond the first: the degree s of its
// primitive polynomial over GF(2), the packed inner coefficients a, and the
// initial odd direction integers m_1..m_s (m_k < 2^k).
type primitive struct {
	s uint32
	a uint32
	m []uint32
}

// joeKuo lists dimensions 2..21 of the Joe–Kuo "new-joe-kuo-6.21201" table.
var joeKuo = []primitive{
	{1, 0, []uint32{1}},
	{2, 1, []uint32{1, 3}},
	{3, 1, []uint32{1, 3, 1}},
	{3, 2, []uint32{1, 1, 1}},
	{4, 1, []uint32{1, 1, 3, 3}},
	{4, 4, []uint32{1, 3, 5, 13}},
	{5, 2, []uint32{1, 1, 5, 5, 17}},
	{5, 4, []uint32{1, 1, 5, 5, 5}},
	{5, 7, []uint32{1, 1, 7, 11, 19}},
	{5, 11, []uint32{1, 1, 5, 1, 1}},
	{5, 13, []uint32{1, 1, 1, 3, 11}},
	{5, 14, []uint32{1, 3, 5, 5, 31}},
	{6, 1, []uint32{1, 3, 3, 9, 7, 49}},
	{6, 13, []uint32{1, 1, 1, 15, 21, 21}},
	{6, 16, []uint32{1, 3, 1, 13, 27, 49}},
	{6, 19, []uint32{1, 1, 1, 15, 7, 5}},
	{6, 22, []uint32{1, 3, 1, 15, 13, 25}},
	{6, 25, []uint32{1, 1, 5, 5, 19, 61}},
	{7, 1, []uint32{1, 3, 7, 11, 23, 15, 103}},
	{7, 4, []uint32{1, 3, 7, 13, 13, 15, 69}},
}

// MaxDimension is the largest dimension New accepts.
const MaxDimension = 21

var (
	directionsOnce sync.Once
	directions     [][wordBits]uint32 // directions[d][b] = v_{b+1} for dimension d (0-based)
)

// directionTable returns the shared, read-only direction integers. The table is
// built once and never mutated afterwards.
func directionTable() [][wordBits]uint32 {
	directionsOnce.Do(func() {
		directions = make([][wordBits]uint32, MaxDimension)

		// Dimension 1 is the van der Corput sequence in base 2.
		for b := 0; b < wordBits; b++ {
			directions[0][b] = 1 << (wordBits - 1 - b)
		}

		for d, p := range joeKuo {
			v := &directions[d+1]
			s := int(p.s)
			for k := 0; k < s; k++ {
				v[k] = p.m[k] << (wordBits - 1 - k)
			}
			// v_k = v_{k-s} ⊕ (v_{k-s} >> s) ⊕ ⊕_{j=1..s-1} a_j·v_{k-j}
			for k := s; k < wordBits; k++ {
				x := v[k-s] ^ (v[k-s] >> p.s)
				for j := 1; j < s; j++ {
					if (p.a>>uint(s-1-j))&1 == 1 {
						x ^= v[k-j]
					}
				}
				v[k] = x
			}
		}
	})

	return directions
}
