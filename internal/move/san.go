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

// Package move renders a HashedMove as algebraic notation. This is the
// move_to_san helper named in scope by the core's spec - it stops at
// single-move rendering; PGN parsing is out of scope.
package move

import (
	"strings"

	. "github.com/frankkopp/chesscore/internal/types"
)

// ToSAN renders m in (short) algebraic notation: castling is "O-O" or
// "O-O-O"; otherwise [piece][file-if-pawn-capture]x?[target][=promotion].
// No check/checkmate suffix and no disambiguation among same-type pieces
// that could also reach the target square - both require scanning the
// rest of the legal move list, which callers that need full SAN can
// layer on top using board.Manager's query API.
func ToSAN(m HashedMove) string {
	if m.IsCastling() {
		if m.Target().FileOf() == FileG {
			return "O-O"
		}
		return "O-O-O"
	}

	var san strings.Builder

	piece := m.Piece()
	isPawn := piece == WhitePawn || piece == BlackPawn
	if !isPawn {
		san.WriteString(strings.ToUpper(piece.String()))
	} else if m.IsCapture() {
		san.WriteString(m.Source().String()[:1])
	}

	if m.IsCapture() {
		san.WriteString("x")
	}

	san.WriteString(m.Target().String())

	if m.Promoted() != NoPiece {
		san.WriteString("=")
		san.WriteString(strings.ToUpper(m.Promoted().String()))
	}

	return san.String()
}
