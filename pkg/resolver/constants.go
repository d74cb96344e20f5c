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

const (
	// Strategy identifiers, reported in Result.Strategy and logs.
	StrategyGameExactName = "strategy_game_exact_name"
	StrategyGameShortName = "strategy_game_short_name"
	StrategyGameRandom    = "strategy_game_random"
	StrategyGameRapidTag  = "strategy_game_rapid_tag"
	StrategyMapExactName  = "strategy_map_exact_name"
	StrategyMapSubstring  = "strategy_map_substring"
	StrategyMapRandom     = "strategy_map_random"

	// Any substring of this word, including "", asks for a random pick.
	randomWord = "random"

	// versionFold is the multiplier applied per numeric token.
	versionFold = 1000
)
