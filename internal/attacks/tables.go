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

import "github.com/frankkopp/chesscore/internal/types"

// initPawnAttacks computes, for each color and square, the squares a
// pawn standing there would attack (diagonal captures only, no pushes).
func initPawnAttacks() [types.ColorLength][types.SqLength]types.Bitboard {
	var result [types.ColorLength][types.SqLength]types.Bitboard
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		b := sq.Bb()

		var white, black types.Bitboard
		if (b<<7)&notHFile != 0 {
			white |= b << 7
		}
		if (b<<9)&notAFile != 0 {
			white |= b << 9
		}
		if (b>>7)&notAFile != 0 {
			black |= b >> 7
		}
		if (b>>9)&notHFile != 0 {
			black |= b >> 9
		}
		result[types.White][sq] = white
		result[types.Black][sq] = black
	}
	return result
}

// initKnightAttacks computes the knight leaper attack table.
func initKnightAttacks() [types.SqLength]types.Bitboard {
	var result [types.SqLength]types.Bitboard
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		b := sq.Bb()
		var attacks types.Bitboard
		if (b<<17)&notAFile != 0 {
			attacks |= b << 17
		}
		if (b<<15)&notHFile != 0 {
			attacks |= b << 15
		}
		if (b<<10)&notABFile != 0 {
			attacks |= b << 10
		}
		if (b<<6)&notHGFile != 0 {
			attacks |= b << 6
		}
		if (b>>17)&notHFile != 0 {
			attacks |= b >> 17
		}
		if (b>>15)&notAFile != 0 {
			attacks |= b >> 15
		}
		if (b>>10)&notHGFile != 0 {
			attacks |= b >> 10
		}
		if (b>>6)&notABFile != 0 {
			attacks |= b >> 6
		}
		result[sq] = attacks
	}
	return result
}

// initKingAttacks computes the king leaper attack table (not counting castling).
func initKingAttacks() [types.SqLength]types.Bitboard {
	var result [types.SqLength]types.Bitboard
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		b := sq.Bb()
		var attacks types.Bitboard
		attacks |= b << 8
		if (b<<9)&notAFile != 0 {
			attacks |= b << 9
		}
		if (b<<7)&notHFile != 0 {
			attacks |= b << 7
		}
		if (b<<1)&notAFile != 0 {
			attacks |= b << 1
		}
		attacks |= b >> 8
		if (b>>9)&notHFile != 0 {
			attacks |= b >> 9
		}
		if (b>>7)&notAFile != 0 {
			attacks |= b >> 7
		}
		if (b>>1)&notHFile != 0 {
			attacks |= b >> 1
		}
		result[sq] = attacks
	}
	return result
}

// initBishopMasks computes, for each square, the relevant-occupancy mask
// for bishop moves: the diagonal rays from sq stopping one square short
// of the board edge (edge squares never need to be in the occupancy key).
func initBishopMasks() [types.SqLength]types.Bitboard {
	var result [types.SqLength]types.Bitboard
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		var attacks types.Bitboard
		tr, tf := int(sq)/8, int(sq)%8
		for r, f := tr+1, tf+1; r <= 6 && f <= 6; r, f = r+1, f+1 {
			attacks.PushSquare(types.Square(r*8 + f))
		}
		for r, f := tr-1, tf+1; r >= 1 && f <= 6; r, f = r-1, f+1 {
			attacks.PushSquare(types.Square(r*8 + f))
		}
		for r, f := tr+1, tf-1; r <= 6 && f >= 1; r, f = r+1, f-1 {
			attacks.PushSquare(types.Square(r*8 + f))
		}
		for r, f := tr-1, tf-1; r >= 1 && f >= 1; r, f = r-1, f-1 {
			attacks.PushSquare(types.Square(r*8 + f))
		}
		result[sq] = attacks
	}
	return result
}

// initRookMasks computes, for each square, the relevant-occupancy mask
// for rook moves (ranks/files, stopping one square short of the edge).
func initRookMasks() [types.SqLength]types.Bitboard {
	var result [types.SqLength]types.Bitboard
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		var attacks types.Bitboard
		tr, tf := int(sq)/8, int(sq)%8
		for r := tr + 1; r <= 6; r++ {
			attacks.PushSquare(types.Square(r*8 + tf))
		}
		for r := tr - 1; r >= 1; r-- {
			attacks.PushSquare(types.Square(r*8 + tf))
		}
		for f := tf + 1; f <= 6; f++ {
			attacks.PushSquare(types.Square(tr*8 + f))
		}
		for f := tf - 1; f >= 1; f-- {
			attacks.PushSquare(types.Square(tr*8 + f))
		}
		result[sq] = attacks
	}
	return result
}

// calcBishopAttacks is the naive ray-scan computation of bishop attacks
// from sq given full-board occupancy occ, stopping at (and including)
// the first occupied square in each direction. Used only to populate the
// magic lookup tables, never during move generation.
func calcBishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	var attacks types.Bitboard
	tr, tf := int(sq)/8, int(sq)%8

	for r, f := tr+1, tf+1; r <= 7 && f <= 7; r, f = r+1, f+1 {
		s := types.Square(r*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for r, f := tr-1, tf+1; r >= 0 && f <= 7; r, f = r-1, f+1 {
		s := types.Square(r*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for r, f := tr+1, tf-1; r <= 7 && f >= 0; r, f = r+1, f-1 {
		s := types.Square(r*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for r, f := tr-1, tf-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
		s := types.Square(r*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	return attacks
}

// calcRookAttacks is the naive ray-scan computation of rook attacks from
// sq given full-board occupancy occ. Used only to populate the magic
// lookup tables.
func calcRookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	var attacks types.Bitboard
	tr, tf := int(sq)/8, int(sq)%8

	for r := tr + 1; r <= 7; r++ {
		s := types.Square(r*8 + tf)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for r := tr - 1; r >= 0; r-- {
		s := types.Square(r*8 + tf)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for f := tf + 1; f <= 7; f++ {
		s := types.Square(tr*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	for f := tf - 1; f >= 0; f-- {
		s := types.Square(tr*8 + f)
		attacks.PushSquare(s)
		if occ.Has(s) {
			break
		}
	}
	return attacks
}
