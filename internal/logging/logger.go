// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the slog loggers used by the renderer and its configuration.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing text records at level or above to w.
// The "error" key is written as "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a level name such as "debug" or "WARN".
// The empty string is slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}
