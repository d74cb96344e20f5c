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
	"testing"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/ZaparooProject/archive-resolver/pkg/testing/fixtures"
	"github.com/ZaparooProject/archive-resolver/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strategyNames(chain []Strategy) []string {
	names := make([]string, len(chain))
	for i, s := range chain {
		names[i] = s.Name()
	}
	return names
}

func TestResolverChains(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Equal(t, []string{
		StrategyGameExactName,
		StrategyGameShortName,
		StrategyGameRandom,
		StrategyGameRapidTag,
	}, strategyNames(r.GameStrategies()))
	assert.Equal(t, []string{
		StrategyMapExactName,
		StrategyMapSubstring,
		StrategyMapRandom,
	}, strategyNames(r.MapStrategies()))

	chain := r.GameStrategies()
	chain[0] = nil
	assert.NotNil(t, r.GameStrategies()[0])
}

func TestResolveGame(t *testing.T) {
	t.Parallel()

	cat := fixtures.Catalog()

	tests := []struct {
		setup    func(*mocks.MockRandSource, *mocks.MockTagResolver)
		name     string
		query    string
		want     string
		strategy string
		resolved bool
	}{
		{
			name:     "exact name",
			query:    "Balanced Annihilation V9.46",
			want:     "Balanced Annihilation V9.46",
			strategy: StrategyGameExactName,
			resolved: true,
		},
		{
			name:     "short name picks newest",
			query:    "ba",
			want:     "Balanced Annihilation V9.47",
			strategy: StrategyGameShortName,
			resolved: true,
		},
		{
			name: "random",
			setup: func(rng *mocks.MockRandSource, _ *mocks.MockTagResolver) {
				rng.On("Int").Return(2)
			},
			query:    "random",
			want:     "Zero-K v1.12.3.0",
			strategy: StrategyGameRandom,
			resolved: true,
		},
		{
			name: "rapid tag",
			setup: func(_ *mocks.MockRandSource, tags *mocks.MockTagResolver) {
				tags.On("ParseTagURI", "rapid://zk:stable").Return("zk:stable", true)
				tags.On("ResolveTag", "zk:stable").Return("Zero-K v1.12.3.0", nil)
			},
			query:    "rapid://zk:stable",
			want:     "Zero-K v1.12.3.0",
			strategy: StrategyGameRapidTag,
			resolved: true,
		},
		{
			name: "rapid tag need not be installed",
			setup: func(_ *mocks.MockRandSource, tags *mocks.MockTagResolver) {
				tags.On("ParseTagURI", "rapid://zk:test").Return("zk:test", true)
				tags.On("ResolveTag", "zk:test").Return("Zero-K test-12345-abcdef", nil)
			},
			query:    "rapid://zk:test",
			want:     "Zero-K test-12345-abcdef",
			strategy: StrategyGameRapidTag,
			resolved: true,
		},
		{
			name: "map name is not a game",
			setup: func(_ *mocks.MockRandSource, tags *mocks.MockTagResolver) {
				tags.On("ParseTagURI", "Comet Catcher").Return("", false)
			},
			query: "Comet Catcher",
			want:  "Comet Catcher",
		},
		{
			name: "identity fallback",
			setup: func(_ *mocks.MockRandSource, tags *mocks.MockTagResolver) {
				tags.On("ParseTagURI", "Unknown Game 1.0").Return("", false)
			},
			query: "Unknown Game 1.0",
			want:  "Unknown Game 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := mocks.NewMockRandSource()
			tags := mocks.NewMockTagResolver()
			if tt.setup != nil {
				tt.setup(rng, tags)
			}

			r := New(WithRand(rng), WithTagResolver(tags))
			got := r.ResolveGame(cat, tt.query)

			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.strategy, got.Strategy)
			assert.Equal(t, tt.resolved, got.Resolved)
			assert.Equal(t, tt.want, r.ResolveGameName(cat, tt.query))
			rng.AssertExpectations(t)
			tags.AssertExpectations(t)
		})
	}
}

func TestResolveMap(t *testing.T) {
	t.Parallel()

	cat := fixtures.Catalog()

	tests := []struct {
		name     string
		query    string
		want     string
		strategy string
		rand     int
		resolved bool
	}{
		{
			name:     "exact name beats shorter substring",
			query:    "Comet Catcher Remake",
			want:     "Comet Catcher Remake",
			strategy: StrategyMapExactName,
			resolved: true,
		},
		{
			name:     "substring",
			query:    "Comet",
			want:     "Comet Catcher",
			strategy: StrategyMapSubstring,
			resolved: true,
		},
		{
			name:     "random",
			query:    "random",
			rand:     3,
			want:     "Tabula-v4",
			strategy: StrategyMapRandom,
			resolved: true,
		},
		{
			name:  "identity fallback",
			query: "zzz_no_such_map",
			want:  "zzz_no_such_map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rng := mocks.NewMockRandSource()
			rng.On("Int").Return(tt.rand).Maybe()

			r := New(WithRand(rng))
			got := r.ResolveMap(cat, tt.query)

			assert.Equal(t, Result{Name: tt.want, Strategy: tt.strategy, Resolved: tt.resolved}, got)
		})
	}
}

func TestResolveRandomDisabled(t *testing.T) {
	t.Parallel()

	rng := mocks.NewMockRandSource()
	tags := mocks.NewMockTagResolver()
	tags.On("ParseTagURI", "random").Return("", false)

	r := New(WithRand(rng), WithTagResolver(tags), WithRandomSelection(false))
	cat := fixtures.Catalog()

	assert.Equal(t, "random", r.ResolveGameName(cat, "random"))
	assert.Equal(t, "random", r.ResolveMapName(cat, "random"))
	rng.AssertNotCalled(t, "Int")
}

func TestResolveWithoutRandSource(t *testing.T) {
	t.Parallel()

	r := New()
	cat := fixtures.Catalog()

	assert.Equal(t, "random", r.ResolveMapName(cat, "random"))
	assert.Equal(t, "random", r.ResolveGameName(cat, "random"))
}

func TestResolveNilCatalog(t *testing.T) {
	t.Parallel()

	rng := mocks.NewMockRandSource()
	r := New(WithRand(rng))

	assert.Equal(t, Result{Name: "BA"}, r.ResolveGame(nil, "BA"))
	assert.Equal(t, Result{Name: "random"}, r.ResolveMap(nil, "random"))
	rng.AssertNotCalled(t, "Int")
}

func TestResolveEmptyCatalog(t *testing.T) {
	t.Parallel()

	tags := mocks.NewMockTagResolver()
	tags.On("ParseTagURI", mock.Anything).Return("", false)

	r := New(WithRand(mocks.NewMockRandSource()), WithTagResolver(tags))
	empty := database.NewSnapshot(nil)

	for _, q := range []string{"", "random", "BA", "Comet"} {
		assert.Equal(t, q, r.ResolveGameName(empty, q))
		assert.Equal(t, q, r.ResolveMapName(empty, q))
	}
}

func TestResolveSeesCatalogChanges(t *testing.T) {
	t.Parallel()

	r := New()
	before := database.NewSnapshot(fixtures.Maps())
	require.Equal(t, "Comet Catcher", r.ResolveMapName(before, "comet"))

	after := database.NewSnapshot(append(fixtures.Maps(), mapArchive("Comet")))
	assert.Equal(t, "Comet", r.ResolveMapName(after, "comet"))
}

func TestResolveKeepsNonUTF8NamesDistinct(t *testing.T) {
	t.Parallel()

	r := New()
	cat := database.NewSnapshot([]database.Archive{
		mapArchive("Caf\xe8 Arena"),
		game("Game \xe8 1.0", "\xe8", "1.0"),
	})

	assert.Equal(t, Result{Name: "caf\xe9"}, r.ResolveMap(cat, "caf\xe9"))
	assert.Equal(t, Result{Name: "\xe9"}, r.ResolveGame(cat, "\xe9"))

	assert.Equal(t, Result{Name: "Caf\xe8 Arena", Strategy: StrategyMapSubstring, Resolved: true}, r.ResolveMap(cat, "caf\xe8"))
	assert.Equal(t, Result{Name: "Game \xe8 1.0", Strategy: StrategyGameShortName, Resolved: true}, r.ResolveGame(cat, "\xe8"))
}
