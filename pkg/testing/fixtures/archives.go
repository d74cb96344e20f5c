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

package fixtures

import "github.com/ZaparooProject/archive-resolver/pkg/database"

// Common test archive fixtures for use in tests

// Games returns installed primary games, including two versions of the same
// short name.
func Games() []database.Archive {
	return []database.Archive{
		{
			Name:      "Balanced Annihilation V9.46",
			ShortName: "BA",
			Version:   "V9.46",
			Kind:      database.KindPrimaryGame,
			Path:      "games/ba946.sdz",
		},
		{
			Name:      "Balanced Annihilation V9.47",
			ShortName: "BA",
			Version:   "V9.47",
			Kind:      database.KindPrimaryGame,
			Path:      "games/ba947.sdz",
		},
		{
			Name:      "Zero-K v1.12.3.0",
			ShortName: "ZK",
			Version:   "v1.12.3.0",
			Kind:      database.KindPrimaryGame,
			Path:      "packages/zk.sdp",
		},
	}
}

// Maps returns installed maps, including a name that is a prefix of another.
func Maps() []database.Archive {
	return []database.Archive{
		{Name: "Comet Catcher Remake", Kind: database.KindMap, Path: "maps/ccr.sd7"},
		{Name: "Comet Catcher", Kind: database.KindMap, Path: "maps/cc.sd7"},
		{Name: "DeltaSiegeDry", Kind: database.KindMap, Path: "maps/dsd.sd7"},
		{Name: "Tabula-v4", Kind: database.KindMap, Path: "maps/tabula.sd7"},
	}
}

// Others returns archives that are neither games nor maps.
func Others() []database.Archive {
	return []database.Archive{
		{Name: "Spring Bitmaps", Kind: database.KindBase},
		{Name: "Spring content v1", Kind: database.KindBase},
		{Name: "Chicken Defense", ShortName: "CD", Version: "1", Kind: database.KindHiddenGame},
	}
}

// Catalog returns a snapshot holding games, maps and other archives,
// interleaved the way a real catalog listing would be.
func Catalog() *database.Snapshot {
	var all []database.Archive
	games, maps, others := Games(), Maps(), Others()
	for i := 0; i < len(games) || i < len(maps) || i < len(others); i++ {
		if i < len(maps) {
			all = append(all, maps[i])
		}
		if i < len(games) {
			all = append(all, games[i])
		}
		if i < len(others) {
			all = append(all, others[i])
		}
	}
	return database.NewSnapshot(all)
}
