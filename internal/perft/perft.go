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

// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard correctness and performance benchmark for a move generator.
// It walks board.ApplyMove directly on copies of the Board and BoardState
// rather than through board.Manager, so there is no per-ply FEN history or
// classification.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/movegen"
	. "github.com/frankkopp/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// Result accumulates the node and event counts of one perft run.
type Result struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	Depth            int
	Elapsed          time.Duration
}

// Perft walks the legal move tree rooted at fenStr to depth using gen for
// move generation, and returns the accumulated leaf counts.
func Perft(gen *movegen.Generator, fenStr string, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}
	startBoard, startState, err := fen.Decode(fenStr)
	if err != nil {
		return Result{}, err
	}
	r := Result{Depth: depth}
	start := time.Now()
	r.Nodes = walk(gen, &startBoard, &startState, depth, &r)
	r.Elapsed = time.Since(start)
	return r, nil
}

// walk recurses to depth 1, where each legal move is counted and
// classified; above depth 1 it only needs the node count of each subtree.
func walk(gen *movegen.Generator, b *Board, s *BoardState, depth int, r *Result) uint64 {
	mover := s.SideToMove
	moves := gen.GenerateMoves(b, s)

	var nodes uint64
	moves.ForEach(func(i int) {
		m := moves.At(i)
		childBoard := *b
		childState := *s
		board.ApplyMove(&childBoard, &childState, m)

		kingSq := childBoard[kingPiece(mover)].LsbIndex()
		if gen.IsSquareAttacked(&childBoard, kingSq, mover.Flip()) {
			return
		}

		if depth > 1 {
			nodes += walk(gen, &childBoard, &childState, depth-1, r)
			return
		}

		nodes++
		r.Nodes++
		if m.IsEnPassant() {
			r.EnpassantCounter++
			r.CaptureCounter++
		} else if m.IsCapture() {
			r.CaptureCounter++
		}
		if m.IsCastling() {
			r.CastleCounter++
		}
		if m.Promoted() != NoPiece {
			r.PromotionCounter++
		}
		oppKingSq := childBoard[kingPiece(mover.Flip())].LsbIndex()
		if gen.IsSquareAttacked(&childBoard, oppKingSq, mover) {
			r.CheckCounter++
			if !hasLegalReply(gen, &childBoard, &childState) {
				r.CheckMateCounter++
			}
		}
	})
	return nodes
}

// hasLegalReply reports whether the side to move in b/s has at least one
// legal move, without generating the full count perft needs at the leaf.
func hasLegalReply(gen *movegen.Generator, b *Board, s *BoardState) bool {
	mover := s.SideToMove
	moves := gen.GenerateMoves(b, s)
	found := false
	moves.ForEach(func(i int) {
		if found {
			return
		}
		m := moves.At(i)
		childBoard := *b
		childState := *s
		board.ApplyMove(&childBoard, &childState, m)
		kingSq := childBoard[kingPiece(mover)].LsbIndex()
		if !gen.IsSquareAttacked(&childBoard, kingSq, mover.Flip()) {
			found = true
		}
	})
	return found
}

func kingPiece(c Color) Piece {
	if c == White {
		return WhiteKing
	}
	return BlackKing
}

// Print writes a human-readable report of r to the German-locale number
// formatter, mirroring the teacher's perft report layout.
func Print(r Result) {
	out.Printf("Depth        : %d\n", r.Depth)
	out.Printf("Time         : %s\n", r.Elapsed)
	nps := uint64(0)
	if r.Elapsed.Nanoseconds() > 0 {
		nps = (r.Nodes * uint64(time.Second.Nanoseconds())) / uint64(r.Elapsed.Nanoseconds())
	}
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Nodes        : %d\n", r.Nodes)
	out.Printf("Captures     : %d\n", r.CaptureCounter)
	out.Printf("EnPassant    : %d\n", r.EnpassantCounter)
	out.Printf("Castles      : %d\n", r.CastleCounter)
	out.Printf("Promotions   : %d\n", r.PromotionCounter)
	out.Printf("Checks       : %d\n", r.CheckCounter)
	out.Printf("Checkmates   : %d\n", r.CheckMateCounter)
}
