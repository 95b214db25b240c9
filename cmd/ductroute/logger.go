package main

import (
	"fmt"
	"io"
)

// ANSI fragments for the status prefixes.
const (
	ansiReset   = "\033[0m"
	ansiCyan    = "\033[36m"
	ansiYellow  = "\033[33m"
	ansiBoldRed = "\033[1;31m"
)

// statusLogger prints prefixed progress lines, optionally colored.
// It stays on stderr so the rendered blueprint on stdout pipes cleanly.
type statusLogger struct {
	w     io.Writer
	color bool
}

func (l *statusLogger) line(color, prefix, format string, args ...any) {
	if l.color {
		fmt.Fprintf(l.w, "%s%s%s %s\n", color, prefix, ansiReset, fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(l.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Info reports normal progress.
func (l *statusLogger) Info(format string, args ...any) {
	l.line(ansiCyan, "[>]", format, args...)
}

// Warn reports recoverable conditions such as unreachable rooms.
func (l *statusLogger) Warn(format string, args ...any) {
	l.line(ansiYellow, "[~]", format, args...)
}

// Error reports failures.
func (l *statusLogger) Error(format string, args ...any) {
	l.line(ansiBoldRed, "[!]", format, args...)
}
