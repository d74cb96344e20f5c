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

//go:build deadlock

// Package syncutil holds the mutexes guarding the resolver's config and
// database migrations. A build with -tags=deadlock runs them through
// go-deadlock and writes its reports to the archive-resolver log.
package syncutil

import (
	"bufio"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether lock checking is compiled in.
const DeadlockEnabled = true

// LockTimeout is how long a config or migration lock may be held before
// go-deadlock reports it.
const LockTimeout = 30 * time.Second

func init() {
	deadlock.Opts.DeadlockTimeout = LockTimeout
	// go-deadlock flushes a *bufio.Writer after each report, so a whole
	// report reaches the log as one entry.
	deadlock.Opts.LogBuf = bufio.NewWriterSize(reportWriter{logger: &log.Logger}, reportBufferSize)
}

type Mutex struct {
	deadlock.Mutex
}

type RWMutex struct {
	deadlock.RWMutex
}
