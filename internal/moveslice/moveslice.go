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

// Package moveslice provides helper functionality for slices of
// HashedMove - the move lists produced by move generation.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/frankkopp/chesscore/internal/types"
)

// MoveSlice is a growable list of HashedMove.
type MoveSlice []types.HashedMove

// New creates a new move slice with the given capacity and 0 elements.
func New(capacity int) *MoveSlice {
	moves := make([]types.HashedMove, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m types.HashedMove) {
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) types.HashedMove {
	return (*ms)[i]
}

// Clear removes all moves from the slice, retaining the current capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// ForEach calls f with the index of each stored move, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// Filter keeps only the elements for which f returns true, reusing the
// underlying array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, x := range *ms {
		if f(i) {
			b = append(b, x)
		}
	}
	*ms = b
}

// String returns a human-readable listing of the moves in the slice.
func (ms *MoveSlice) String() string {
	var os strings.Builder
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(m.ToMove().String())
	}
	os.WriteString(" }")
	return os.String()
}
