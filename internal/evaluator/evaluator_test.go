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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/fen"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestMaterialStartingPosition(t *testing.T) {
	a := assert.New(t)
	board, _, err := fen.Decode(fen.StartFen)
	a.NoError(err)

	want := Value(8*100 + 2*300 + 2*325 + 2*500 + 900 + 10000)
	a.Equal(want, Material(&board, White))
	a.Equal(want, Material(&board, Black))
	a.Equal(Value(0), MaterialDiff(&board, White))
}

func TestMaterialDiffFavorsExtraQueen(t *testing.T) {
	a := assert.New(t)
	board, _, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	a.NoError(err)

	a.Equal(Value(900+10000), Material(&board, White))
	a.Equal(Value(10000), Material(&board, Black))
	a.Equal(Value(900), MaterialDiff(&board, White))
	a.Equal(Value(-900), MaterialDiff(&board, Black))
}
