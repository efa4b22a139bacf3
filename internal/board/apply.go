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

package board

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// cornerRight maps a castling corner to the CastlingRights bit it
// guards, for both the rook-move and rook-capture cases of step 7 below.
var cornerRight = map[Square]CastlingRights{
	SqA1: WhiteQueenSide,
	SqH1: WhiteKingSide,
	SqA8: BlackQueenSide,
	SqH8: BlackKingSide,
}

// ApplyMove mutates board/state in place to reflect playing m, following
// the apply algorithm verbatim: move the piece, resolve capture/en-passant/
// promotion/castling, maintain castling rights and the en-passant target,
// advance the clocks and flip the side to move, then refresh occupancies.
func ApplyMove(board *Board, state *BoardState, m HashedMove) {
	src, dst := m.Source(), m.Target()
	piece := m.Piece()
	mover := state.SideToMove

	board[piece] &^= src.Bb()
	board[piece] |= dst.Bb()

	isPawnMove := piece == WhitePawn || piece == BlackPawn
	resetClock := isPawnMove

	if m.IsCapture() && !m.IsEnPassant() {
		clearEnemyPieceAt(board, mover.Flip(), dst)
		resetClock = true
		if right, ok := cornerRight[dst]; ok {
			state.CastlingRights &^= right
		}
	}

	if m.IsEnPassant() {
		var capturedSq Square
		if mover == White {
			capturedSq = dst - 8
		} else {
			capturedSq = dst + 8
		}
		clearEnemyPieceAt(board, mover.Flip(), capturedSq)
		resetClock = true
	}

	if m.IsDoublePush() {
		state.EnPassantTarget = Square((int(src) + int(dst)) / 2)
	} else {
		state.EnPassantTarget = SqNone
	}

	if m.Promoted() != NoPiece {
		board[piece] &^= dst.Bb()
		board[m.Promoted()] |= dst.Bb()
	}

	if m.IsCastling() {
		switch dst {
		case SqG1:
			board[WhiteRook] &^= SqH1.Bb()
			board[WhiteRook] |= SqF1.Bb()
		case SqC1:
			board[WhiteRook] &^= SqA1.Bb()
			board[WhiteRook] |= SqD1.Bb()
		case SqG8:
			board[BlackRook] &^= SqH8.Bb()
			board[BlackRook] |= SqF8.Bb()
		case SqC8:
			board[BlackRook] &^= SqA8.Bb()
			board[BlackRook] |= SqD8.Bb()
		}
		if mover == White {
			state.CastlingRights &^= WhiteCastlingRights
		} else {
			state.CastlingRights &^= BlackCastlingRights
		}
	}

	switch piece {
	case WhiteKing:
		state.CastlingRights &^= WhiteCastlingRights
	case BlackKing:
		state.CastlingRights &^= BlackCastlingRights
	}
	if right, ok := cornerRight[src]; ok {
		state.CastlingRights &^= right
	}

	if resetClock {
		state.HalfMoveClock = 0
	} else {
		state.HalfMoveClock++
	}
	if state.SideToMove == Black {
		state.FullMoveCount++
	}
	state.SideToMove = state.SideToMove.Flip()

	board.UpdateOccupancies()
}

// clearEnemyPieceAt removes whichever of color c's six piece bitboards
// holds sq - exactly one will, by the Board invariant that per-color
// piece bitboards are pairwise disjoint.
func clearEnemyPieceAt(board *Board, c Color, sq Square) {
	first, last := WhitePawn, WhiteKing
	if c == Black {
		first, last = BlackPawn, BlackKing
	}
	for p := first; p <= last; p++ {
		if board[p].Has(sq) {
			board[p] &^= sq.Bb()
			return
		}
	}
}
