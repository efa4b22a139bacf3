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

// Package logging wires up github.com/op/go-logging backends for every
// package in this module. Each package calls GetLog once with its own
// name to get a *Logger tagged with that name in the output.
package logging

import (
	"os"
	"sync"

	. "github.com/op/go-logging"
)

var (
	once      sync.Once
	logLevel  = DEBUG
	backendMu sync.Mutex
)

// SetLevel changes the level applied to loggers obtained from GetLog.
// Must be called before the first GetLog call to take effect package-wide,
// matching the teacher's config.Setup()-before-use convention.
func SetLevel(level Level) {
	backendMu.Lock()
	defer backendMu.Unlock()
	logLevel = level
}

// GetLog returns a named logger backed by a single shared stdout backend.
func GetLog(name string) *Logger {
	once.Do(setupBackend)
	return MustGetLogger(name)
}

func setupBackend() {
	backend1 := NewLogBackend(os.Stdout, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backend1Formatter := NewBackendFormatter(backend1, format)
	backend1Leveled := AddModuleLevel(backend1Formatter)
	backend1Leveled.SetLevel(logLevel, "")
	SetBackend(backend1Leveled)
}
