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

package resolver_test

import (
	"fmt"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/ZaparooProject/archive-resolver/pkg/resolver"
)

func ExampleResolver_ResolveGameName() {
	cat := database.NewSnapshot([]database.Archive{
		{Name: "Balanced Annihilation V9.46", ShortName: "BA", Version: "V9.46", Kind: database.KindPrimaryGame},
		{Name: "Balanced Annihilation V9.47", ShortName: "BA", Version: "V9.47", Kind: database.KindPrimaryGame},
	})
	r := resolver.New(resolver.WithRandomSelection(false))

	fmt.Println(r.ResolveGameName(cat, "ba"))
	fmt.Println(r.ResolveGameName(cat, "Some Other Game"))
	// Output:
	// Balanced Annihilation V9.47
	// Some Other Game
}

func ExampleResolver_ResolveMapName() {
	cat := database.NewSnapshot([]database.Archive{
		{Name: "Comet Catcher Remake", Kind: database.KindMap},
		{Name: "Comet Catcher", Kind: database.KindMap},
	})
	r := resolver.New()

	fmt.Println(r.ResolveMapName(cat, "comet"))
	fmt.Println(r.ResolveMapName(cat, "catcher remake"))
	// Output:
	// Comet Catcher
	// Comet Catcher Remake
}
