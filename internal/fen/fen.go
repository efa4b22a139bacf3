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

// Package fen encodes and decodes a complete chess position to and from
// Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/internal/logging"
	. "github.com/frankkopp/chesscore/internal/types"
)

var log = logging.GetLog("fen")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field identifies which of the six space-separated FEN fields a
// ParseError was raised against.
type Field int

const (
	FieldPlacement Field = iota
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfMoveClock
	FieldFullMoveCount
)

func (f Field) String() string {
	switch f {
	case FieldPlacement:
		return "piece placement"
	case FieldSideToMove:
		return "side to move"
	case FieldCastling:
		return "castling rights"
	case FieldEnPassant:
		return "en passant target"
	case FieldHalfMoveClock:
		return "half move clock"
	case FieldFullMoveCount:
		return "full move count"
	default:
		return "unknown field"
	}
}

// ParseError reports a malformed FEN field.
type ParseError struct {
	Which Field
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed FEN field %s: %q", e.Which, e.Value)
}

var (
	regexPlacement = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
	regexSide      = regexp.MustCompile(`^[wb]$`)
	regexCastling  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassant = regexp.MustCompile(`^([a-h][36]|-)$`)
)

// Decode parses a FEN string into a Board and BoardState. Parsing is
// permissive about trailing fields (they default as documented) but
// rejects malformed piece-placement, side-to-move, castling or
// en-passant fields outright.
func Decode(s string) (Board, BoardState, error) {
	var board Board
	state := BoardState{EnPassantTarget: SqNone, FullMoveCount: 1}

	s = strings.TrimSpace(s)
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return board, state, &ParseError{FieldPlacement, s}
	}

	if !regexPlacement.MatchString(parts[0]) {
		return Board{}, BoardState{}, &ParseError{FieldPlacement, parts[0]}
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Board{}, BoardState{}, &ParseError{FieldPlacement, parts[0]}
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			piece, ok := PieceFromFenChar(byte(c))
			if !ok {
				return Board{}, BoardState{}, &ParseError{FieldPlacement, parts[0]}
			}
			if file > FileH {
				return Board{}, BoardState{}, &ParseError{FieldPlacement, parts[0]}
			}
			sq := SquareOf(file, rank)
			board[piece].PushSquare(sq)
			file++
		}
		if file != FileNone {
			return Board{}, BoardState{}, &ParseError{FieldPlacement, parts[0]}
		}
	}
	board.UpdateOccupancies()

	state.SideToMove = White
	if len(parts) >= 2 {
		if !regexSide.MatchString(parts[1]) {
			return Board{}, BoardState{}, &ParseError{FieldSideToMove, parts[1]}
		}
		if parts[1] == "b" {
			state.SideToMove = Black
		}
	}

	if len(parts) >= 3 {
		if !regexCastling.MatchString(parts[2]) {
			return Board{}, BoardState{}, &ParseError{FieldCastling, parts[2]}
		}
		if parts[2] != "-" {
			for _, c := range parts[2] {
				switch c {
				case 'K':
					state.CastlingRights |= WhiteKingSide
				case 'Q':
					state.CastlingRights |= WhiteQueenSide
				case 'k':
					state.CastlingRights |= BlackKingSide
				case 'q':
					state.CastlingRights |= BlackQueenSide
				}
			}
		}
	}

	if len(parts) >= 4 {
		if !regexEnPassant.MatchString(parts[3]) {
			return Board{}, BoardState{}, &ParseError{FieldEnPassant, parts[3]}
		}
		if parts[3] != "-" {
			sq, _ := SquareFromAlgebraic(parts[3])
			state.EnPassantTarget = sq
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return Board{}, BoardState{}, &ParseError{FieldHalfMoveClock, parts[4]}
		}
		state.HalfMoveClock = uint8(n)
	}

	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return Board{}, BoardState{}, &ParseError{FieldFullMoveCount, parts[5]}
		}
		state.FullMoveCount = uint16(n)
	}

	log.Debugf("decoded fen %q", s)
	return board, state, nil
}

// Encode renders a Board and BoardState as a FEN string, always with all
// six fields, run-length digits merged and castling in KQkq order.
// Encode(Decode(s)) reproduces s exactly for a full six-field s in that
// canonical form; an s that Decode accepts with trailing fields omitted
// (or with split digit runs such as "44") comes back in the full
// canonical form instead, so it does not equal s.
func Encode(board *Board, state *BoardState) string {
	var out strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := board.PieceAt(SquareOf(f, r))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteString(pc.String())
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			out.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}

	out.WriteString(" ")
	if state.SideToMove == White {
		out.WriteString("w")
	} else {
		out.WriteString("b")
	}

	out.WriteString(" ")
	out.WriteString(state.CastlingRights.String())

	out.WriteString(" ")
	out.WriteString(state.EnPassantTarget.String())

	out.WriteString(" ")
	out.WriteString(strconv.Itoa(int(state.HalfMoveClock)))

	out.WriteString(" ")
	out.WriteString(strconv.Itoa(int(state.FullMoveCount)))

	return out.String()
}
