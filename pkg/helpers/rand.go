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

package helpers

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/rs/zerolog/log"
)

var maxRandInt = big.NewInt(math.MaxInt)

// CryptoRand is a random source backed by crypto/rand. The zero value is
// ready to use.
type CryptoRand struct{}

// Int returns a non-negative random int. It returns 0 if the system random
// source fails.
func (CryptoRand) Int() int {
	n, err := rand.Int(rand.Reader, maxRandInt)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate random number")
		return 0
	}
	return int(n.Int64())
}
