//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/types"
)

func TestPushBackAndAt(t *testing.T) {
	a := assert.New(t)
	ms := New(4)
	a.Equal(0, ms.Len())

	m := types.NewHashedMove(types.SqE2, types.SqE4, types.WhitePawn, types.NoPiece, false, true, false, false)
	ms.PushBack(m)
	a.Equal(1, ms.Len())
	a.Equal(m, ms.At(0))
}

func TestFilterKeepsOnlyMatching(t *testing.T) {
	a := assert.New(t)
	ms := New(4)
	quiet := types.NewHashedMove(types.SqG1, types.SqF3, types.WhiteKnight, types.NoPiece, false, false, false, false)
	capture := types.NewHashedMove(types.SqF3, types.SqD4, types.WhiteKnight, types.NoPiece, true, false, false, false)
	ms.PushBack(quiet)
	ms.PushBack(capture)

	ms.Filter(func(i int) bool {
		return ms.At(i).IsCapture()
	})
	a.Equal(1, ms.Len())
	a.Equal(capture, ms.At(0))
}

func TestClear(t *testing.T) {
	a := assert.New(t)
	ms := New(2)
	ms.PushBack(types.NewHashedMove(types.SqE2, types.SqE4, types.WhitePawn, types.NoPiece, false, true, false, false))
	ms.Clear()
	a.Equal(0, ms.Len())
}
