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

// Package board owns a live Board and BoardState, applies moves while
// maintaining full game state, classifies each attempted move and
// exposes the query API a driver plays a game through. It is the only
// package that mutates a position; movegen only ever reads one.
package board

import (
	"strings"

	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/movegen"
	. "github.com/frankkopp/chesscore/internal/types"
)

var log = logging.GetLog("board")

// Manager owns a Board, a BoardState, a borrowed move generator and a
// FEN history. One per active game; cloning the embedded Board/BoardState
// (a handful of value types) is how TryMove speculatively tests a move
// for self-check without touching the committed position.
type Manager struct {
	gen     *movegen.Generator
	board   Board
	state   BoardState
	history []string
}

// NewManager returns a Manager seeded with the standard starting position.
func NewManager(gen *movegen.Generator) *Manager {
	m := &Manager{gen: gen}
	m.Reset()
	return m
}

// NewManagerFromFEN returns a Manager seeded from fenStr. On a malformed
// FEN it returns a non-nil error and no Manager; no partial state is
// ever constructed.
func NewManagerFromFEN(gen *movegen.Generator, fenStr string) (*Manager, error) {
	m := &Manager{gen: gen}
	if err := m.ResetFromFEN(fenStr); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset restores the standard starting position and clears history.
func (m *Manager) Reset() {
	board, state, _ := fen.Decode(fen.StartFen)
	m.board = board
	m.state = state
	m.history = append(m.history[:0], m.ToFEN())
}

// ResetFromFEN replaces the live position with the one encoded by fenStr.
// On error the Manager is left untouched.
func (m *Manager) ResetFromFEN(fenStr string) error {
	board, state, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}
	m.board = board
	m.state = state
	m.history = append(m.history[:0], m.ToFEN())
	return nil
}

// TryMove attempts to play the user-facing move m against the live
// position. It never leaves the live position partially mutated: on
// Illegal the board and state are exactly as before the call.
func (m *Manager) TryMove(userMove Move) (MoveResult, HashedMove) {
	match, found := m.findMove(userMove)
	if !found {
		return Illegal, HashedMove(0)
	}

	mover := m.state.SideToMove
	newBoard := m.board
	newState := m.state
	ApplyMove(&newBoard, &newState, match)

	kingSq := newBoard[kingPiece(mover)].LsbIndex()
	if m.gen.IsSquareAttacked(&newBoard, kingSq, mover.Flip()) {
		return Illegal, HashedMove(0)
	}

	m.board = newBoard
	m.state = newState
	m.history = append(m.history, m.ToFEN())

	result := m.classify()
	log.Debugf("played %s -> %s", match.ToMove(), result)
	return result, match
}

// findMove regenerates the pseudo-legal move list and returns the first
// move whose source, target and promotion field match userMove.
func (m *Manager) findMove(userMove Move) (HashedMove, bool) {
	moves := m.gen.GenerateMoves(&m.board, &m.state)
	found := false
	var match HashedMove
	moves.ForEach(func(i int) {
		if found {
			return
		}
		cand := moves.At(i)
		if cand.Source() == userMove.From && cand.Target() == userMove.To && cand.Promoted() == userMove.PromotedTo {
			match = cand
			found = true
		}
	})
	return match, found
}

// classify generates the side-to-move's legal replies in the live
// position and derives Valid/Check/Checkmate/Stalemate/Draw from them
// and the half-move clock. It is also how NewManagerFromFEN exposes a
// stalemate or checkmate that was reached by construction rather than by
// TryMove - there is no null-move/pass operation in the public API, so
// that is the only way to observe one.
func (m *Manager) classify() MoveResult {
	side := m.state.SideToMove
	kingSq := m.board[kingPiece(side)].LsbIndex()
	inCheck := m.gen.IsSquareAttacked(&m.board, kingSq, side.Flip())

	legal := 0
	moves := m.gen.GenerateMoves(&m.board, &m.state)
	moves.ForEach(func(i int) {
		cand := moves.At(i)
		b := m.board
		s := m.state
		ApplyMove(&b, &s, cand)
		ksq := b[kingPiece(side)].LsbIndex()
		if !m.gen.IsSquareAttacked(&b, ksq, side.Flip()) {
			legal++
		}
	})

	switch {
	case legal == 0 && inCheck:
		return Checkmate
	case legal == 0:
		return Stalemate
	case m.state.HalfMoveClock >= 100:
		return Draw
	case inCheck:
		return Check
	default:
		return Valid
	}
}

// Status reports the classification of the live position for the side
// to move, without attempting any move. Used to observe a stalemate or
// checkmate reached via NewManagerFromFEN/ResetFromFEN, which TryMove
// alone can never produce (there is no pass move).
func (m *Manager) Status() MoveResult {
	return m.classify()
}

// PseudoLegalTargets returns the target square of every pseudo-legal
// move whose source is sq. A promoting pawn contributes one entry per
// promotion piece; callers that want a deduplicated square set should
// dedupe themselves.
func (m *Manager) PseudoLegalTargets(sq Square) []Square {
	moves := m.gen.GenerateMoves(&m.board, &m.state)
	var targets []Square
	moves.ForEach(func(i int) {
		cand := moves.At(i)
		if cand.Source() == sq {
			targets = append(targets, cand.Target())
		}
	})
	return targets
}

// ToFEN renders the live position as a FEN string.
func (m *Manager) ToFEN() string {
	return fen.Encode(&m.board, &m.state)
}

// HistoryAt returns the FEN recorded after the i-th committed move (i=0
// is the position Manager started from), or false if i is out of range.
func (m *Manager) HistoryAt(i int) (string, bool) {
	if i < 0 || i >= len(m.history) {
		return "", false
	}
	return m.history[i], true
}

// ToArray returns the piece on each square, NoPiece for empty squares.
func (m *Manager) ToArray() [SqLength]Piece {
	return m.board.ToArray()
}

// SideToMove returns the color to move in the live position.
func (m *Manager) SideToMove() Color {
	return m.state.SideToMove
}

// HalfMoveClock returns the number of plies since the last pawn move or capture.
func (m *Manager) HalfMoveClock() uint8 {
	return m.state.HalfMoveClock
}

// FullMoveCount returns the current full-move number.
func (m *Manager) FullMoveCount() uint16 {
	return m.state.FullMoveCount
}

// PieceCount returns how many of piece p are on the board. Piece(All)
// returns the total piece count.
func (m *Manager) PieceCount(p Piece) int {
	return m.board.PieceCount(p)
}

// Board exposes the live board by value for read-only callers such as
// the evaluator and SAN renderer.
func (m *Manager) Board() Board {
	return m.board
}

// String renders the live position as an ASCII board diagram followed
// by its FEN, mirroring the teacher's StringBoard()/StringFen() split.
func (m *Manager) String() string {
	arr := m.board.ToArray()
	var out strings.Builder
	out.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			out.WriteString("| ")
			out.WriteString(arr[SquareOf(f, r)].String())
			out.WriteString(" ")
		}
		out.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	out.WriteString(m.ToFEN())
	return out.String()
}

func kingPiece(c Color) Piece {
	if c == White {
		return WhiteKing
	}
	return BlackKing
}
