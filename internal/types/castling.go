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

// CastlingRights packs the four castling privileges into a single byte.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1
	WhiteQueenSide CastlingRights = 2
	BlackKingSide  CastlingRights = 4
	BlackQueenSide CastlingRights = 8

	WhiteCastlingRights = WhiteKingSide | WhiteQueenSide
	BlackCastlingRights = BlackKingSide | BlackQueenSide
	AllCastlingRights   = WhiteCastlingRights | BlackCastlingRights
)

// Has reports whether cr grants the given right.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// String renders cr in canonical FEN order (KQkq), or "-" if empty.
func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingSide) {
		s += "K"
	}
	if cr.Has(WhiteQueenSide) {
		s += "Q"
	}
	if cr.Has(BlackKingSide) {
		s += "k"
	}
	if cr.Has(BlackQueenSide) {
		s += "q"
	}
	return s
}
