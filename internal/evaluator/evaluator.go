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

// Package evaluator provides the minimal material-evaluation surface a
// depth-limited search driver needs: no positional terms, no pawn
// structure, no king safety - just the per-piece values a driver can
// retune through internal/config.
package evaluator

import (
	"github.com/frankkopp/chesscore/internal/config"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Value is a centipawn material score.
type Value int32

// pieceValue returns the configured material value of a real piece
// (White and Black pieces of the same kind share a value; color is
// applied by the caller by sign).
func pieceValue(p Piece) Value {
	switch p {
	case WhitePawn, BlackPawn:
		return Value(config.Settings.Eval.PawnValue)
	case WhiteKnight, BlackKnight:
		return Value(config.Settings.Eval.KnightValue)
	case WhiteBishop, BlackBishop:
		return Value(config.Settings.Eval.BishopValue)
	case WhiteRook, BlackRook:
		return Value(config.Settings.Eval.RookValue)
	case WhiteQueen, BlackQueen:
		return Value(config.Settings.Eval.QueenValue)
	case WhiteKing, BlackKing:
		return Value(config.Settings.Eval.KingValue)
	default:
		return 0
	}
}

// Material returns the sum of piece values color c has on board.
func Material(board *Board, c Color) Value {
	first, last := WhitePawn, WhiteKing
	if c == Black {
		first, last = BlackPawn, BlackKing
	}
	var total Value
	for p := first; p <= last; p++ {
		total += Value(board[p].Count()) * pieceValue(p)
	}
	return total
}

// MaterialDiff returns Material(side) - Material(opponent of side).
func MaterialDiff(board *Board, side Color) Value {
	return Material(board, side) - Material(board, side.Flip())
}
