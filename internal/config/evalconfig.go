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

package config

// evalConfiguration holds the material values the evaluator sums. No
// positional, pawn-structure or king-safety terms: the core ships only
// the material surface a depth-limited search driver needs, per the
// evaluator's scope.
type evalConfiguration struct {
	PawnValue   int16
	KnightValue int16
	BishopValue int16
	RookValue   int16
	QueenValue  int16
	KingValue   int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.PawnValue = 100
	Settings.Eval.KnightValue = 300
	Settings.Eval.BishopValue = 325
	Settings.Eval.RookValue = 500
	Settings.Eval.QueenValue = 900
	Settings.Eval.KingValue = 10000
}

// setupEval makes no further adjustments: the defaults are set in init
// and any values from the config file are used as read.
func setupEval() {
}
