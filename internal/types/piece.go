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

// Piece is a tagged enumeration of the 12 real pieces plus the three
// aggregate occupancy bitboards (WhiteAll, BlackAll, All) and NoPiece.
// The ordinal doubles as the index into a Board.
type Piece int8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	WhiteAll
	BlackAll
	All
	PieceLength = 16
)

// IsReal reports whether p is one of the 12 actual pieces (not NoPiece
// and not one of the aggregate occupancy entries).
func (p Piece) IsReal() bool {
	return p >= WhitePawn && p <= BlackKing
}

// ColorOf returns the color of a real piece. Precondition: p.IsReal().
func (p Piece) ColorOf() Color {
	if p >= WhitePawn && p <= WhiteKing {
		return White
	}
	return Black
}

var pieceLabels = [PieceLength]byte{
	NoPiece:     ' ',
	WhitePawn:   'P',
	WhiteKnight: 'N',
	WhiteBishop: 'B',
	WhiteRook:   'R',
	WhiteQueen:  'Q',
	WhiteKing:   'K',
	BlackPawn:   'p',
	BlackKnight: 'n',
	BlackBishop: 'b',
	BlackRook:   'r',
	BlackQueen:  'q',
	BlackKing:   'k',
	WhiteAll:    ' ',
	BlackAll:    ' ',
	All:         ' ',
}

// String returns the FEN character for p ("P", "n", ... or " " for
// NoPiece/aggregate entries).
func (p Piece) String() string {
	return string(pieceLabels[p])
}

// PieceFromFenChar maps a FEN piece-placement character to a Piece.
// Returns NoPiece, false for unrecognised characters.
func PieceFromFenChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return NoPiece, false
	}
}
