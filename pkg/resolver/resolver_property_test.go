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

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"pgregory.net/rapid"
)

// fixedRand always returns the same value.
type fixedRand int

func (f fixedRand) Int() int { return int(f) }

func archiveGen() *rapid.Generator[database.Archive] {
	return rapid.Custom(func(t *rapid.T) database.Archive {
		kind := rapid.SampledFrom([]database.ArchiveKind{
			database.KindPrimaryGame,
			database.KindHiddenGame,
			database.KindMap,
			database.KindBase,
		}).Draw(t, "kind")
		return database.Archive{
			Name:      rapid.StringMatching(`[A-Za-z][A-Za-z0-9 .\-]{0,20}`).Draw(t, "name"),
			ShortName: rapid.StringMatching(`[A-Za-z]{1,4}`).Draw(t, "short"),
			Version:   rapid.StringMatching(`[vV]?[0-9]{0,3}(\.[0-9]{1,3}){0,3}`).Draw(t, "version"),
			Kind:      kind,
		}
	})
}

func catalogGen() *rapid.Generator[*database.Snapshot] {
	return rapid.Custom(func(t *rapid.T) *database.Snapshot {
		return database.NewSnapshot(rapid.SliceOfN(archiveGen(), 0, 30).Draw(t, "archives"))
	})
}

// TestPropertyInstalledNamesResolveToThemselves verifies exact names are fixed points.
func TestPropertyInstalledNamesResolveToThemselves(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		cat := catalogGen().Draw(t, "catalog")
		r := New(WithRand(fixedRand(rapid.Int().Draw(t, "rand"))))

		for _, a := range cat.ArchivesByKind(database.KindPrimaryGame) {
			if got := r.ResolveGameName(cat, a.Name); got != a.Name {
				t.Fatalf("game %q resolved to %q", a.Name, got)
			}
		}
		for _, name := range cat.MapNames() {
			if got := r.ResolveMapName(cat, name); got != name {
				t.Fatalf("map %q resolved to %q", name, got)
			}
		}
	})
}

// TestPropertyResolvedMapIsInstalledOrQuery verifies map resolution never invents names.
func TestPropertyResolvedMapIsInstalledOrQuery(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		cat := catalogGen().Draw(t, "catalog")
		query := rapid.StringMatching(`[A-Za-z0-9 ]{0,10}`).Draw(t, "query")
		r := New(WithRand(fixedRand(rapid.Int().Draw(t, "rand"))))

		res := r.ResolveMap(cat, query)
		if !res.Resolved {
			if res.Name != query {
				t.Fatalf("unresolved map %q returned %q", query, res.Name)
			}
			return
		}
		a, ok := cat.ArchiveByName(res.Name)
		if !ok || a.Kind != database.KindMap {
			t.Fatalf("map %q resolved to non-map %q", query, res.Name)
		}
	})
}

// TestPropertyShortNamePicksMaxVersion verifies no candidate outranks the pick.
func TestPropertyShortNamePicksMaxVersion(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		target := archiveGen().Draw(t, "target")
		target.Kind = database.KindPrimaryGame
		rest := rapid.SliceOfN(archiveGen(), 0, 30).Draw(t, "archives")
		cat := database.NewSnapshot(append([]database.Archive{target}, rest...))
		games := cat.ArchivesByKind(database.KindPrimaryGame)
		short := target.ShortName

		name, ok := ShortNameStrategy{}.TryResolve(short, cat)
		if !ok {
			t.Fatalf("short name %q did not match", short)
		}
		picked, _ := cat.ArchiveByName(name)
		best := ExtractVersionNumber(picked.Version)
		for _, g := range games {
			if strings.EqualFold(g.ShortName, short) && ExtractVersionNumber(g.Version) > best {
				t.Fatalf("picked %q (%d) but %q has %d", name, best, g.Name, ExtractVersionNumber(g.Version))
			}
		}
	})
}

// TestPropertyResolveDeterministic verifies a fixed random source gives stable results.
func TestPropertyResolveDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		cat := catalogGen().Draw(t, "catalog")
		query := rapid.SampledFrom([]string{"random", "rand", "", "BA", "v1"}).Draw(t, "query")
		r := New(WithRand(fixedRand(rapid.Int().Draw(t, "rand"))))

		if a, b := r.ResolveGame(cat, query), r.ResolveGame(cat, query); a != b {
			t.Fatalf("game results differ: %+v vs %+v", a, b)
		}
		if a, b := r.ResolveMap(cat, query), r.ResolveMap(cat, query); a != b {
			t.Fatalf("map results differ: %+v vs %+v", a, b)
		}
	})
}

// TestPropertyExtractVersionNumberJoin verifies separators between numbers do not matter.
func TestPropertyExtractVersionNumberJoin(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.IntRange(0, 999), 1, 4).Draw(t, "parts")
		sep := rapid.SampledFrom([]string{".", " ", "_", "-", "\t"}).Draw(t, "sep")

		strs := make([]string, len(parts))
		var want uint64
		for i, p := range parts {
			strs[i] = fmt.Sprint(p)
			want = want*1000 + uint64(p)
		}

		if got := ExtractVersionNumber(strings.Join(strs, sep)); got != want {
			t.Fatalf("got %d want %d for %v joined by %q", got, want, parts, sep)
		}
	})
}

// TestPropertyLowerASCIIOnlyTouchesUppercase verifies folding never merges distinct non-ASCII bytes.
func TestPropertyLowerASCIIOnlyTouchesUppercase(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOf(rapid.Byte()).Draw(t, "bytes")
		out := lowerASCII(string(in))

		if len(out) != len(in) {
			t.Fatalf("length changed: %d -> %d", len(in), len(out))
		}
		for i, c := range in {
			want := c
			if c >= 'A' && c <= 'Z' {
				want = c + ('a' - 'A')
			}
			if out[i] != want {
				t.Fatalf("byte %d: got %#x want %#x", i, out[i], want)
			}
		}
	})
}
