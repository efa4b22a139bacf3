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

// Square is an integer square index on the board, A1=0 .. H8=63.
// SqNone (64) is the sentinel for "no square".
type Square int8

// SqLength is the number of real squares on the board.
const SqLength = 64

// SqNone is the sentinel value meaning "no square".
const SqNone Square = 64

// Named squares, A1..H8, bit index = rank*8 + file.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// FileOf returns the file (0=a..7=h) of sq.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank (0=rank1..7=rank8) of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf returns the square for the given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

const squareLabels = "abcdefgh"

// String returns the algebraic notation of sq (e.g. "e4"), or "-" if sq is SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string(squareLabels[sq.FileOf()]) + sq.RankOf().String()
}

// SquareFromAlgebraic parses algebraic notation ("e4") into a Square.
// Returns SqNone, false on malformed input.
func SquareFromAlgebraic(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SqNone, false
	}
	return SquareOf(File(file-'a'), Rank(rank-'1')), true
}
