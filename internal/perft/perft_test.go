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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/movegen"
)

// Reference node counts from https://www.chessprogramming.org/Perft_Results.

func TestStandardPerft(t *testing.T) {
	a := assert.New(t)
	gen := movegen.New(attacks.NewGenerator())

	var results = [5][6]uint64{
		// depth      Nodes  Captures   EP  Checks  Mates
		{0, 1, 0, 0, 0, 0},
		{1, 20, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0},
		{3, 8_902, 34, 0, 12, 0},
		{4, 197_281, 1_576, 0, 469, 8},
	}

	for depth := 1; depth <= 4; depth++ {
		r, err := Perft(gen, fen.StartFen, depth)
		a.NoError(err)
		a.Equalf(results[depth][1], r.Nodes, "nodes at depth %d", depth)
		a.Equalf(results[depth][2], r.CaptureCounter, "captures at depth %d", depth)
		a.Equalf(results[depth][3], r.EnpassantCounter, "en passant at depth %d", depth)
		a.Equalf(results[depth][4], r.CheckCounter, "checks at depth %d", depth)
		a.Equalf(results[depth][5], r.CheckMateCounter, "mates at depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	a := assert.New(t)
	gen := movegen.New(attacks.NewGenerator())
	kiwipeteFen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	var results = [3][8]uint64{
		// depth     Nodes  Captures   EP  Checks  Mates  Castles  Promotions
		{0, 1, 0, 0, 0, 0, 0, 0},
		{1, 48, 8, 0, 0, 0, 2, 0},
		{2, 2_039, 351, 1, 3, 0, 91, 0},
	}

	for depth := 1; depth <= 2; depth++ {
		r, err := Perft(gen, kiwipeteFen, depth)
		a.NoError(err)
		a.Equalf(results[depth][1], r.Nodes, "nodes at depth %d", depth)
		a.Equalf(results[depth][2], r.CaptureCounter, "captures at depth %d", depth)
		a.Equalf(results[depth][3], r.EnpassantCounter, "en passant at depth %d", depth)
		a.Equalf(results[depth][4], r.CheckCounter, "checks at depth %d", depth)
		a.Equalf(results[depth][5], r.CheckMateCounter, "mates at depth %d", depth)
		a.Equalf(results[depth][6], r.CastleCounter, "castles at depth %d", depth)
		a.Equalf(results[depth][7], r.PromotionCounter, "promotions at depth %d", depth)
	}
}

func TestMirrorPerftDepthTwo(t *testing.T) {
	a := assert.New(t)
	gen := movegen.New(attacks.NewGenerator())
	mirrorFen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	r, err := Perft(gen, mirrorFen, 2)
	a.NoError(err)
	a.Equal(uint64(264), r.Nodes)
	a.Equal(uint64(87), r.CaptureCounter)
	a.Equal(uint64(10), r.CheckCounter)
	a.Equal(uint64(6), r.CastleCounter)
	a.Equal(uint64(48), r.PromotionCounter)
}

func TestMalformedFenReturnsError(t *testing.T) {
	a := assert.New(t)
	gen := movegen.New(attacks.NewGenerator())
	_, err := Perft(gen, "not a fen", 1)
	a.Error(err)
}
