/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package attacks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/types"
)

// TestSliderMagicMatchesNaiveRayScan round-trips the magic-bitboard
// lookup against the naive ray-scan calculation for a large number of
// random occupancies on every square, for both bishop and rook.
func TestSliderMagicMatchesNaiveRayScan(t *testing.T) {
	gen := NewGenerator()
	rng := rand.New(rand.NewSource(1))

	const iterations = 20000
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		for i := 0; i < iterations; i++ {
			occ := types.Bitboard(rng.Uint64())

			want := calcBishopAttacks(sq, occ)
			got := gen.BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks mismatch on %s", sq)

			want = calcRookAttacks(sq, occ)
			got = gen.RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks mismatch on %s", sq)
		}
	}
}

func TestKnightAttacksCorners(t *testing.T) {
	gen := NewGenerator()
	attacks := gen.KnightAttacks(types.SqA1)
	assert.True(t, attacks.Has(types.SqB3))
	assert.True(t, attacks.Has(types.SqC2))
	assert.Equal(t, 2, attacks.PopCount())
}

func TestKingAttacksCorner(t *testing.T) {
	gen := NewGenerator()
	attacks := gen.KingAttacks(types.SqA1)
	assert.Equal(t, 3, attacks.PopCount())
	assert.True(t, attacks.Has(types.SqA2))
	assert.True(t, attacks.Has(types.SqB1))
	assert.True(t, attacks.Has(types.SqB2))
}

func TestPawnAttacksCenter(t *testing.T) {
	gen := NewGenerator()
	white := gen.PawnAttacks(types.White, types.SqE4)
	assert.True(t, white.Has(types.SqD5))
	assert.True(t, white.Has(types.SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := gen.PawnAttacks(types.Black, types.SqE4)
	assert.True(t, black.Has(types.SqD3))
	assert.True(t, black.Has(types.SqF3))
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	gen := NewGenerator()
	occ := types.SqD4.Bb() | types.SqD6.Bb() | types.SqF6.Bb()
	want := gen.BishopAttacks(types.SqD4, occ) | gen.RookAttacks(types.SqD4, occ)
	assert.Equal(t, want, gen.QueenAttacks(types.SqD4, occ))
}
