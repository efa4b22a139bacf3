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

// Package attacks builds the precomputed attack tables that move
// generation and check detection look up: leaper attacks for pawns,
// knights and kings, and fancy-magic-bitboard tables for the sliding
// bishop and rook attacks (queen attacks are their union).
package attacks

import (
	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/types"
)

var log = logging.GetLog("attacks")

// not_x_file masks drop the wrap-around files a leaper's shift would
// otherwise spill across.
const (
	notAFile  types.Bitboard = 0xFEFEFEFEFEFEFEFE
	notHFile  types.Bitboard = 0x7F7F7F7F7F7F7F7F
	notHGFile types.Bitboard = 0x3F3F3F3F3F3F3F3F
	notABFile types.Bitboard = 0xFCFCFCFCFCFCFCFC
)

// Generator holds every precomputed attack table. It is immutable once
// built by NewGenerator and safe for concurrent use by any number of
// board.Manager instances.
type Generator struct {
	pawnAttacks   [types.ColorLength][types.SqLength]types.Bitboard
	knightAttacks [types.SqLength]types.Bitboard
	kingAttacks   [types.SqLength]types.Bitboard

	bishopMasks [types.SqLength]types.Bitboard
	rookMasks   [types.SqLength]types.Bitboard

	bishopMagic [types.SqLength]types.Magic
	rookMagic   [types.SqLength]types.Magic
}

// NewGenerator builds all attack tables and returns a ready-to-use
// Generator. The four independent table-construction jobs (pawn/knight
// leapers, king leaper, bishop magic table, rook magic table) run
// concurrently via errgroup - each only writes to its own table, so
// there is no shared mutable state to guard.
func NewGenerator() *Generator {
	g := &Generator{}

	var eg errgroup.Group
	eg.Go(func() error {
		g.pawnAttacks = initPawnAttacks()
		g.knightAttacks = initKnightAttacks()
		return nil
	})
	eg.Go(func() error {
		g.kingAttacks = initKingAttacks()
		return nil
	})
	eg.Go(func() error {
		g.bishopMasks = initBishopMasks()
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			g.bishopMagic[sq] = types.NewMagic(g.bishopMasks[sq], types.BishopMagics[sq], types.BishopBits[sq],
				func(occ types.Bitboard) types.Bitboard { return calcBishopAttacks(sq, occ) })
		}
		return nil
	})
	eg.Go(func() error {
		g.rookMasks = initRookMasks()
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			g.rookMagic[sq] = types.NewMagic(g.rookMasks[sq], types.RookMagics[sq], types.RookBits[sq],
				func(occ types.Bitboard) types.Bitboard { return calcRookAttacks(sq, occ) })
		}
		return nil
	})
	// errors are never returned by the jobs above; wait only to join them.
	_ = eg.Wait()

	log.Debug("attack tables initialized")
	return g
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func (g *Generator) PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	return g.pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func (g *Generator) KnightAttacks(sq types.Square) types.Bitboard {
	return g.knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks (not counting castling).
func (g *Generator) KingAttacks(sq types.Square) types.Bitboard {
	return g.kingAttacks[sq]
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// full-board occupancy occupied.
func (g *Generator) BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &g.bishopMagic[sq]
	return m.Attacks[m.Index(occupied)]
}

// RookAttacks returns the squares a rook on sq attacks given the
// full-board occupancy occupied.
func (g *Generator) RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &g.rookMagic[sq]
	return m.Attacks[m.Index(occupied)]
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func (g *Generator) QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return g.BishopAttacks(sq, occupied) | g.RookAttacks(sq, occupied)
}
