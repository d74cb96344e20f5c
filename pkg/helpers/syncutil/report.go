// Zaparoo Archive Resolver
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Archive Resolver.
//
// Zaparoo Archive Resolver is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Archive Resolver is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Archive Resolver.  If not, see <http://www.gnu.org/licenses/>.

package syncutil

import (
	"strings"

	"github.com/rs/zerolog"
)

const reportBufferSize = 64 * 1024

// reportWriter turns go-deadlock reports into error log entries. logger is
// read on every write so it follows the logger set up at startup.
type reportWriter struct {
	logger *zerolog.Logger
}

func (w reportWriter) Write(p []byte) (int, error) {
	report := strings.TrimRight(string(p), "\n")
	if report == "" {
		return len(p), nil
	}
	w.logger.Error().
		Str("detector", "go-deadlock").
		Dur("lock_timeout", LockTimeout).
		Msg(report)
	return len(p), nil
}
