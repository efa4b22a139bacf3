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

// Board is a fixed-length container of 16 bitboards indexed by Piece
// ordinal: one per real piece plus WhiteAll/BlackAll/All. A value type -
// copying a Board is a plain array copy, which TryMove relies on to
// speculatively test a move without mutating the committed position.
type Board [PieceLength]Bitboard

// PieceAt returns the piece occupying sq, or NoPiece if it is empty.
func (b *Board) PieceAt(sq Square) Piece {
	for p := WhitePawn; p <= BlackKing; p++ {
		if b[p].Has(sq) {
			return p
		}
	}
	return NoPiece
}

// UpdateOccupancies recomputes WhiteAll, BlackAll and All from the
// per-piece bitboards. Must be called after any per-piece bitboard edit.
func (b *Board) UpdateOccupancies() {
	b[WhiteAll] = b[WhitePawn] | b[WhiteKnight] | b[WhiteBishop] | b[WhiteRook] | b[WhiteQueen] | b[WhiteKing]
	b[BlackAll] = b[BlackPawn] | b[BlackKnight] | b[BlackBishop] | b[BlackRook] | b[BlackQueen] | b[BlackKing]
	b[All] = b[WhiteAll] | b[BlackAll]
}

// OwnAll returns the aggregate occupancy bitboard for color c.
func (b *Board) OwnAll(c Color) Bitboard {
	if c == White {
		return b[WhiteAll]
	}
	return b[BlackAll]
}

// ToArray returns a 64-entry array of the piece on each square (NoPiece
// for empty squares), in square-index order.
func (b *Board) ToArray() [SqLength]Piece {
	var arr [SqLength]Piece
	for sq := SqA1; sq <= SqH8; sq++ {
		arr[sq] = b.PieceAt(sq)
	}
	return arr
}

// PieceCount returns the number of set bits in board[p]. Passing
// Piece.All returns the total number of pieces on the board.
func (b *Board) PieceCount(p Piece) int {
	return b[p].PopCount()
}

// BoardState carries the game-state fields that accompany a Board:
// castling rights, move clocks, the en-passant target and the side to move.
type BoardState struct {
	CastlingRights  CastlingRights
	HalfMoveClock   uint8
	FullMoveCount   uint16
	EnPassantTarget Square
	SideToMove      Color
}

// StartState is the BoardState of the standard starting position.
func StartState() BoardState {
	return BoardState{
		CastlingRights:  AllCastlingRights,
		HalfMoveClock:   0,
		FullMoveCount:   1,
		EnPassantTarget: SqNone,
		SideToMove:      White,
	}
}
