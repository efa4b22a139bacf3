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

// Package movegen produces the full pseudo-legal move list for a given
// board and state. It does not filter for self-check - that is the
// board manager's job.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/moveslice"
	. "github.com/frankkopp/chesscore/internal/types"
)

var log = logging.GetLog("movegen")

// MaxMoves is a generous upper bound on the pseudo-legal moves in any
// reachable chess position, used to size the scratch move list.
const MaxMoves = 256

// Generator produces pseudo-legal moves using a shared, immutable
// attacks.Generator for its leaper and slider lookups.
type Generator struct {
	attacks *attacks.Generator
}

// New creates a move generator backed by the given attack tables.
func New(a *attacks.Generator) *Generator {
	return &Generator{attacks: a}
}

// GenerateMoves returns every pseudo-legal move for the side to move in
// (board, state). Generation order is pawn, castling, knight, bishop,
// rook, queen, king - fixed for test determinism, irrelevant for
// correctness.
func (g *Generator) GenerateMoves(board *Board, state *BoardState) *moveslice.MoveSlice {
	moves := moveslice.New(MaxMoves)
	g.generatePawnMoves(board, state, moves)
	g.generateCastlingMoves(board, state, moves)
	g.generateLeaperOrSliderMoves(board, state.SideToMove, WhiteKnight, moves)
	g.generateLeaperOrSliderMoves(board, state.SideToMove, WhiteBishop, moves)
	g.generateLeaperOrSliderMoves(board, state.SideToMove, WhiteRook, moves)
	g.generateLeaperOrSliderMoves(board, state.SideToMove, WhiteQueen, moves)
	g.generateLeaperOrSliderMoves(board, state.SideToMove, WhiteKing, moves)
	return moves
}

func addMove(moves *moveslice.MoveSlice, source, target Square, piece, promoted Piece, capture, doublePush, enpassant, castling bool) {
	moves.PushBack(NewHashedMove(source, target, piece, promoted, capture, doublePush, enpassant, castling))
}

func (g *Generator) generatePawnMoves(board *Board, state *BoardState, moves *moveslice.MoveSlice) {
	side := state.SideToMove
	pawnPiece := WhitePawn
	enemyAll := board[BlackAll]
	promoRank := Rank8
	startRank := Rank2
	pushDir := 8
	if side == Black {
		pawnPiece = BlackPawn
		enemyAll = board[WhiteAll]
		promoRank = Rank1
		startRank = Rank7
		pushDir = -8
	}

	promotions := [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
	if side == Black {
		promotions = [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}
	}

	pawns := board[pawnPiece]
	for pawns != BbZero {
		source := pawns.PopLsb()
		target := Square(int(source) + pushDir)

		// single push
		if target.IsValid() && !board[All].Has(target) {
			if target.RankOf() == promoRank {
				for _, promo := range promotions {
					addMove(moves, source, target, pawnPiece, promo, false, false, false, false)
				}
			} else {
				addMove(moves, source, target, pawnPiece, NoPiece, false, false, false, false)
			}

			// double push
			if source.RankOf() == startRank {
				dtarget := Square(int(source) + 2*pushDir)
				if !board[All].Has(dtarget) {
					addMove(moves, source, dtarget, pawnPiece, NoPiece, false, true, false, false)
				}
			}
		}

		// captures
		attacked := g.attacks.PawnAttacks(side, source)
		captures := attacked & enemyAll
		for captures != BbZero {
			capTarget := captures.PopLsb()
			if capTarget.RankOf() == promoRank {
				for _, promo := range promotions {
					addMove(moves, source, capTarget, pawnPiece, promo, true, false, false, false)
				}
			} else {
				addMove(moves, source, capTarget, pawnPiece, NoPiece, true, false, false, false)
			}
		}

		// en passant
		if state.EnPassantTarget != SqNone && attacked.Has(state.EnPassantTarget) {
			addMove(moves, source, state.EnPassantTarget, pawnPiece, NoPiece, true, false, true, false)
		}
	}
}

func (g *Generator) generateCastlingMoves(board *Board, state *BoardState, moves *moveslice.MoveSlice) {
	occ := board[All]
	if state.SideToMove == White {
		if state.CastlingRights.Has(WhiteKingSide) &&
			!occ.Has(SqF1) && !occ.Has(SqG1) &&
			!g.IsSquareAttacked(board, SqE1, Black) && !g.IsSquareAttacked(board, SqF1, Black) {
			addMove(moves, SqE1, SqG1, WhiteKing, NoPiece, false, false, false, true)
		}
		if state.CastlingRights.Has(WhiteQueenSide) &&
			!occ.Has(SqD1) && !occ.Has(SqC1) && !occ.Has(SqB1) &&
			!g.IsSquareAttacked(board, SqE1, Black) && !g.IsSquareAttacked(board, SqD1, Black) {
			addMove(moves, SqE1, SqC1, WhiteKing, NoPiece, false, false, false, true)
		}
		return
	}
	if state.CastlingRights.Has(BlackKingSide) &&
		!occ.Has(SqF8) && !occ.Has(SqG8) &&
		!g.IsSquareAttacked(board, SqE8, White) && !g.IsSquareAttacked(board, SqF8, White) {
		addMove(moves, SqE8, SqG8, BlackKing, NoPiece, false, false, false, true)
	}
	if state.CastlingRights.Has(BlackQueenSide) &&
		!occ.Has(SqD8) && !occ.Has(SqC8) && !occ.Has(SqB8) &&
		!g.IsSquareAttacked(board, SqE8, White) && !g.IsSquareAttacked(board, SqD8, White) {
		addMove(moves, SqE8, SqC8, BlackKing, NoPiece, false, false, false, true)
	}
}

// generateLeaperOrSliderMoves handles knight, bishop, rook, queen and
// king moves uniformly: attacks = table_lookup(source, All) & ~ownAll.
func (g *Generator) generateLeaperOrSliderMoves(board *Board, side Color, whitePiece Piece, moves *moveslice.MoveSlice) {
	piece := whitePiece
	if side == Black {
		piece = whitePiece + 6
	}
	ownAll := board.OwnAll(side)
	enemyAll := board[WhiteAll]
	if side == White {
		enemyAll = board[BlackAll]
	}

	pieces := board[piece]
	for pieces != BbZero {
		source := pieces.PopLsb()
		var targets Bitboard
		switch whitePiece {
		case WhiteKnight:
			targets = g.attacks.KnightAttacks(source)
		case WhiteBishop:
			targets = g.attacks.BishopAttacks(source, board[All])
		case WhiteRook:
			targets = g.attacks.RookAttacks(source, board[All])
		case WhiteQueen:
			targets = g.attacks.QueenAttacks(source, board[All])
		case WhiteKing:
			targets = g.attacks.KingAttacks(source)
		}
		targets &^= ownAll

		for targets != BbZero {
			target := targets.PopLsb()
			capture := enemyAll.Has(target)
			addMove(moves, source, target, piece, NoPiece, capture, false, false, false)
		}
	}
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by, using the symmetry trick: e.g. a white pawn attacks sq iff a
// black pawn placed on sq would attack a square occupied by a white
// pawn.
func (g *Generator) IsSquareAttacked(board *Board, sq Square, by Color) bool {
	if by == White {
		if g.attacks.PawnAttacks(Black, sq)&board[WhitePawn] != 0 {
			return true
		}
		if g.attacks.KnightAttacks(sq)&board[WhiteKnight] != 0 {
			return true
		}
		if g.attacks.BishopAttacks(sq, board[All])&board[WhiteBishop] != 0 {
			return true
		}
		if g.attacks.RookAttacks(sq, board[All])&board[WhiteRook] != 0 {
			return true
		}
		if g.attacks.QueenAttacks(sq, board[All])&board[WhiteQueen] != 0 {
			return true
		}
		if g.attacks.KingAttacks(sq)&board[WhiteKing] != 0 {
			return true
		}
		return false
	}
	if g.attacks.PawnAttacks(White, sq)&board[BlackPawn] != 0 {
		return true
	}
	if g.attacks.KnightAttacks(sq)&board[BlackKnight] != 0 {
		return true
	}
	if g.attacks.BishopAttacks(sq, board[All])&board[BlackBishop] != 0 {
		return true
	}
	if g.attacks.RookAttacks(sq, board[All])&board[BlackRook] != 0 {
		return true
	}
	if g.attacks.QueenAttacks(sq, board[All])&board[BlackQueen] != 0 {
		return true
	}
	if g.attacks.KingAttacks(sq)&board[BlackKing] != 0 {
		return true
	}
	return false
}
