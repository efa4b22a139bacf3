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

package types

import "strings"

// Move is the user-facing move request: a source and target square plus
// an optional promotion piece (NoPiece unless promoting).
type Move struct {
	From       Square
	To         Square
	PromotedTo Piece
}

// String renders m in UCI long algebraic form, e.g. "e2e4" or "e7e8q"
// for a promotion. Promotion letters are always lower case.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.PromotedTo != NoPiece {
		s += strings.ToLower(m.PromotedTo.String())
	}
	return s
}

// HashedMove is the packed move encoding, stored in a uint32.
// Bit layout (LSB first, bits 0-25 used), bits 26-31 are always zero:
//
//	0-5   source square
//	6-11  target square
//	12-16 moving piece ordinal
//	17-21 promoted-to piece ordinal (NoPiece when no promotion)
//	22    capture flag
//	23    double-push flag
//	24    en-passant flag
//	25    castling flag
//
// Equality is the equality of the underlying uint32.
type HashedMove uint32

const (
	moveSourceShift = 0
	moveTargetShift = 6
	movePieceShift  = 12
	movePromoShift  = 17
	moveCaptureBit  = 22
	moveDoublePush  = 23
	moveEnpassant   = 24
	moveCastling    = 25

	moveSquareMask = 0x3F
	movePieceMask  = 0x1F
)

// NewHashedMove packs the given fields into a HashedMove.
func NewHashedMove(source, target Square, piece, promoted Piece, capture, doublePush, enpassant, castling bool) HashedMove {
	var m uint32
	m |= uint32(source) & moveSquareMask << moveSourceShift
	m |= (uint32(target) & moveSquareMask) << moveTargetShift
	m |= (uint32(piece) & movePieceMask) << movePieceShift
	m |= (uint32(promoted) & movePieceMask) << movePromoShift
	if capture {
		m |= 1 << moveCaptureBit
	}
	if doublePush {
		m |= 1 << moveDoublePush
	}
	if enpassant {
		m |= 1 << moveEnpassant
	}
	if castling {
		m |= 1 << moveCastling
	}
	return HashedMove(m)
}

// Source returns the move's source square.
func (m HashedMove) Source() Square {
	return Square((uint32(m) >> moveSourceShift) & moveSquareMask)
}

// Target returns the move's target square.
func (m HashedMove) Target() Square {
	return Square((uint32(m) >> moveTargetShift) & moveSquareMask)
}

// Piece returns the moving piece's ordinal.
func (m HashedMove) Piece() Piece {
	return Piece((uint32(m) >> movePieceShift) & movePieceMask)
}

// Promoted returns the promoted-to piece, or NoPiece if this move does
// not promote.
func (m HashedMove) Promoted() Piece {
	return Piece((uint32(m) >> movePromoShift) & movePieceMask)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m HashedMove) IsCapture() bool {
	return uint32(m)&(1<<moveCaptureBit) != 0
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m HashedMove) IsDoublePush() bool {
	return uint32(m)&(1<<moveDoublePush) != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m HashedMove) IsEnPassant() bool {
	return uint32(m)&(1<<moveEnpassant) != 0
}

// IsCastling reports whether the move is a castling move.
func (m HashedMove) IsCastling() bool {
	return uint32(m)&(1<<moveCastling) != 0
}

// ToMove converts a HashedMove back to the user-facing Move representation.
func (m HashedMove) ToMove() Move {
	return Move{From: m.Source(), To: m.Target(), PromotedTo: m.Promoted()}
}

// MoveResult classifies the outcome of an attempted move.
type MoveResult int8

const (
	Illegal MoveResult = iota
	Valid
	Check
	Checkmate
	Stalemate
	Draw
)

func (r MoveResult) String() string {
	switch r {
	case Illegal:
		return "Illegal"
	case Valid:
		return "Valid"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}
