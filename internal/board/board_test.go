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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/movegen"
	. "github.com/frankkopp/chesscore/internal/types"
)

func newTestManager() *Manager {
	return NewManager(movegen.New(attacks.NewGenerator()))
}

func TestScholarsMateCheckmate(t *testing.T) {
	a := assert.New(t)
	m := newTestManager()

	moves := []Move{
		{From: SqE2, To: SqE4},
		{From: SqE7, To: SqE5},
		{From: SqD1, To: SqH5},
		{From: SqB8, To: SqC6},
		{From: SqF1, To: SqC4},
		{From: SqG8, To: SqF6},
		{From: SqH5, To: SqF7},
	}
	var result MoveResult
	for _, mv := range moves {
		var hm HashedMove
		result, hm = m.TryMove(mv)
		a.NotEqual(Illegal, result, "move %s should be legal", mv)
		_ = hm
	}
	a.Equal(Checkmate, result)
	a.Equal(Checkmate, m.Status())
}

func TestCastlingRightsLostOnRookMove(t *testing.T) {
	a := assert.New(t)
	m, err := NewManagerFromFEN(movegen.New(attacks.NewGenerator()),
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	a.NoError(err)

	result, _ := m.TryMove(Move{From: SqH1, To: SqG1})
	a.NotEqual(Illegal, result)

	_, state, err := decodeLive(m)
	a.NoError(err)
	a.False(state.CastlingRights.Has(WhiteKingSide))
	a.True(state.CastlingRights.Has(WhiteQueenSide))
	a.True(state.CastlingRights.Has(BlackKingSide))
	a.True(state.CastlingRights.Has(BlackQueenSide))
}

func TestEnPassantCapture(t *testing.T) {
	a := assert.New(t)
	m, err := NewManagerFromFEN(movegen.New(attacks.NewGenerator()),
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	a.NoError(err)

	result, hm := m.TryMove(Move{From: SqE5, To: SqD6})
	a.NotEqual(Illegal, result)
	a.True(hm.IsEnPassant())
	a.True(hm.IsCapture())

	arr := m.ToArray()
	a.Equal(NoPiece, arr[SqD5])
	a.Equal(WhitePawn, arr[SqD6])
}

func TestPromotion(t *testing.T) {
	a := assert.New(t)
	m, err := NewManagerFromFEN(movegen.New(attacks.NewGenerator()),
		"8/P7/8/8/8/8/8/k6K w - - 0 1")
	a.NoError(err)

	result, hm := m.TryMove(Move{From: SqA7, To: SqA8, PromotedTo: WhiteQueen})
	a.Equal(Check, result)
	a.Equal(WhiteQueen, hm.Promoted())

	arr := m.ToArray()
	a.Equal(WhiteQueen, arr[SqA8])
	a.Equal(1, m.PieceCount(WhiteQueen))
	a.Equal(0, m.PieceCount(WhitePawn))
}

func TestStalemateObservedThroughConstruction(t *testing.T) {
	a := assert.New(t)
	m, err := NewManagerFromFEN(movegen.New(attacks.NewGenerator()),
		"k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	a.NoError(err)
	a.Equal(Stalemate, m.Status())
}

func TestFiftyMoveDraw(t *testing.T) {
	a := assert.New(t)
	m, err := NewManagerFromFEN(movegen.New(attacks.NewGenerator()),
		"k7/8/8/8/8/8/8/K6R w - - 99 80")
	a.NoError(err)

	result, _ := m.TryMove(Move{From: SqA1, To: SqA2})
	a.Equal(Draw, result)
}

func TestIllegalMoveLeavesPositionUntouched(t *testing.T) {
	a := assert.New(t)
	m := newTestManager()
	before := m.ToFEN()

	result, _ := m.TryMove(Move{From: SqE2, To: SqE5})
	a.Equal(Illegal, result)
	a.Equal(before, m.ToFEN())
}

// decodeLive is a small test helper exposing the live state for assertions
// that need the BoardState directly rather than through Manager's query API.
func decodeLive(m *Manager) (Board, BoardState, error) {
	return m.board, m.state, nil
}
