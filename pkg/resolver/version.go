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

package resolver

import "math"

// ExtractVersionNumber folds the integers found in a version string into a
// single key, so that "1.2.3" and "1 2 3" both become 1002003. Parsing reads
// an optionally signed integer at a time; anything that is not one is
// skipped a character at a time, and integers that do not fit in 32 bits
// are dropped along with the character after them. That includes
// "-2147483648", whose magnitude does not fit either.
//
// Each integer shifts the key by a fixed factor of 1000 regardless of its own
// size. Versions with more components outrank ones with fewer ("1.0.0" folds
// to 1000000, above "9.10" at 9010) and components of 1000 or more spill into
// the next position, so the key is only a coarse ordering.
func ExtractVersionNumber(version string) uint64 {
	var key uint64
	i := 0
	for i < len(version) {
		for i < len(version) && isSpace(version[i]) {
			i++
		}
		if i >= len(version) {
			break
		}

		n, width, ok := leadingInt(version[i:])
		switch {
		case ok:
			key = key*versionFold + n
			i += width
		case width > 0:
			// overflowed: the digits were consumed, then one more char skipped
			i += width + 1
		default:
			i++
		}
	}
	return key
}

// leadingInt parses an optionally signed decimal integer at the start of s
// and returns its magnitude. width is the number of bytes consumed; on
// overflow ok is false and width covers the digits read.
func leadingInt(s string) (magnitude uint64, width int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	var n uint64
	overflow := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if !overflow {
			n = n*10 + uint64(s[i]-'0')
			if n > math.MaxInt32 {
				overflow = true
			}
		}
		i++
	}
	if i == start {
		return 0, 0, false
	}
	if overflow {
		return 0, i, false
	}
	return n, i, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
