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

package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestToSANQuietPawnMove(t *testing.T) {
	a := assert.New(t)
	m := NewHashedMove(SqE2, SqE4, WhitePawn, NoPiece, false, true, false, false)
	a.Equal("e4", ToSAN(m))
}

func TestToSANPieceMove(t *testing.T) {
	a := assert.New(t)
	m := NewHashedMove(SqG1, SqF3, WhiteKnight, NoPiece, false, false, false, false)
	a.Equal("Nf3", ToSAN(m))
}

func TestToSANPawnCapture(t *testing.T) {
	a := assert.New(t)
	m := NewHashedMove(SqE4, SqD5, WhitePawn, NoPiece, true, false, false, false)
	a.Equal("exd5", ToSAN(m))
}

func TestToSANPieceCapture(t *testing.T) {
	a := assert.New(t)
	m := NewHashedMove(SqF3, SqD4, WhiteKnight, NoPiece, true, false, false, false)
	a.Equal("Nxd4", ToSAN(m))
}

func TestToSANPromotion(t *testing.T) {
	a := assert.New(t)
	m := NewHashedMove(SqA7, SqA8, WhitePawn, WhiteQueen, false, false, false, false)
	a.Equal("a8=Q", ToSAN(m))
}

func TestToSANCastling(t *testing.T) {
	a := assert.New(t)
	kingSide := NewHashedMove(SqE1, SqG1, WhiteKing, NoPiece, false, false, false, true)
	a.Equal("O-O", ToSAN(kingSide))
	queenSide := NewHashedMove(SqE1, SqC1, WhiteKing, NoPiece, false, false, false, true)
	a.Equal("O-O-O", ToSAN(queenSide))
}
