// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2017 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package log

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorProfile defines escape sequences which provide color in
// terminals. Some terminals support 8 colors, some 256, others
// none at all.
type colorProfile struct {
	infoPrefix  []byte
	warnPrefix  []byte
	errorPrefix []byte
	timePrefix  []byte
}

var colorReset = []byte("\033[0m")

// For terms with 8-color support.
var colorProfile8 = &colorProfile{
	infoPrefix:  []byte("\033[0;36;49m"),
	warnPrefix:  []byte("\033[0;33;49m"),
	errorPrefix: []byte("\033[0;31;49m"),
	timePrefix:  []byte("\033[2;37;49m"),
}

// For terms with 256-color support.
var colorProfile256 = &colorProfile{
	infoPrefix:  []byte("\033[38;5;33m"),
	warnPrefix:  []byte("\033[38;5;214m"),
	errorPrefix: []byte("\033[38;5;160m"),
	timePrefix:  []byte("\033[38;5;246m"),
}

// colorProfileFor returns the color profile to use for a terminal of type
// term, or nil if it does not support color.
func colorProfileFor(term string) *colorProfile {
	switch term {
	case "ansi", "tmux":
		return colorProfile8
	case "st":
		return colorProfile256
	}
	if strings.HasSuffix(term, "256color") {
		return colorProfile256
	}
	if strings.HasSuffix(term, "color") || strings.HasPrefix(term, "screen") {
		return colorProfile8
	}
	return nil
}

// stderrColorProfile returns the color profile for stderr, or nil if stderr
// is not a terminal.
func stderrColorProfile() *colorProfile {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return colorProfileFor(os.Getenv("TERM"))
}

// severityPrefix returns the escape sequence that colors entries of
// severity s.
func (cp *colorProfile) severityPrefix(s Severity) []byte {
	switch s {
	case Severity_INFO:
		return cp.infoPrefix
	case Severity_WARNING:
		return cp.warnPrefix
	default:
		return cp.errorPrefix
	}
}

// SetNoColor disables colored output even when logging to a terminal.
// Colors are only ever used for stderr.
func SetNoColor(noColor bool) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.noColor = noColor
}
