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

package types

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/frankkopp/chesscore/internal/assert"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbOne is a bitboard with only bit 0 (A1) set.
const BbOne Bitboard = 1

// fileBb and rankBb are precomputed masks for each file/rank, indexed by
// File/Rank ordinal. Populated once at package init by
// rankFileBbPreCompute.
var fileBb [8]Bitboard
var rankBb [8]Bitboard

func init() {
	rankFileBbPreCompute()
}

// rankFileBbPreCompute fills fileBb and rankBb from the basic file-a/rank-1
// masks by successive left shifts.
func rankFileBbPreCompute() {
	const fileA Bitboard = 0x0101010101010101
	const rank1 Bitboard = 0x00000000000000FF
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = fileA << uint(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = rank1 << (8 * uint(r))
	}
}

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "Bb() called on an invalid square")
	}
	return BbOne << uint(sq)
}

// PushSquare sets the bit for sq and returns the new value. The receiver
// is updated in place.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare clears the bit for sq and returns the new value. The
// receiver is updated in place.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= sq.Bb()
	return *b
}

// Has tests whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Count returns the population count of b (L0 bit primitive).
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// PopCount is an alias for Count, matching the teacher's naming.
func (b Bitboard) PopCount() int {
	return b.Count()
}

// LsbIndex returns the index of the least significant set bit.
// Precondition: b != 0.
func (b Bitboard) LsbIndex() Square {
	if assert.DEBUG {
		assert.Assert(b != BbZero, "LsbIndex() called on an empty bitboard")
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Lsb returns the index of the least significant set bit, or SqNone on
// an empty bitboard - convenient for loop termination checks.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit's square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and clears it from b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// Set returns b with the bit at index i set.
func Set(i Square, b Bitboard) Bitboard {
	return b | i.Bb()
}

// Clear returns b with the bit at index i cleared.
func Clear(i Square, b Bitboard) Bitboard {
	return b &^ i.Bb()
}

// IsSet reports whether bit i is set in b.
func IsSet(i Square, b Bitboard) bool {
	return b.Has(i)
}

// MoveBit clears the bit at from and sets the bit at to.
func MoveBit(from, to Square, b Bitboard) Bitboard {
	return Set(to, Clear(from, b))
}

// String returns the 64-character binary representation of b, msb first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 board diagram, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
