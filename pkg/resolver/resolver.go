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

// Package resolver turns loosely typed game and map names into the canonical
// names of installed archives.
package resolver

import (
	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of a resolution. When no strategy matched, Name is
// the query unchanged and Resolved is false.
type Result struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy,omitempty"`
	Resolved bool   `json:"resolved"`
}

type options struct {
	rand            RandSource
	tags            TagResolver
	randomSelection bool
}

type Option func(*options)

// WithRand sets the random source used by the random strategies.
func WithRand(r RandSource) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithRandomSelection toggles the random strategies. Enabled by default, but
// they still need a source set with WithRand.
func WithRandomSelection(enabled bool) Option {
	return func(o *options) {
		o.randomSelection = enabled
	}
}

// WithTagResolver enables rapid tag lookups for games.
func WithTagResolver(t TagResolver) Option {
	return func(o *options) {
		o.tags = t
	}
}

// Resolver holds the game and map strategy chains. It has no mutable state
// and is safe for concurrent use if its collaborators are.
type Resolver struct {
	games []Strategy
	maps  []Strategy
}

var emptyCatalog = database.NewSnapshot(nil)

func New(opts ...Option) *Resolver {
	o := options{randomSelection: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{
		games: []Strategy{
			ExactNameStrategy{Kind: database.KindPrimaryGame},
			ShortNameStrategy{},
			RandomStrategy{
				Kind:    database.KindPrimaryGame,
				Rand:    o.rand,
				Enabled: o.randomSelection,
			},
			RapidTagStrategy{Tags: o.tags},
		},
		maps: []Strategy{
			ExactNameStrategy{Kind: database.KindMap},
			SubstringStrategy{},
			RandomStrategy{
				Kind:    database.KindMap,
				Rand:    o.rand,
				Enabled: o.randomSelection,
			},
		},
	}
}

// GameStrategies returns the game chain in the order it is tried.
func (r *Resolver) GameStrategies() []Strategy {
	return append([]Strategy(nil), r.games...)
}

// MapStrategies returns the map chain in the order it is tried.
func (r *Resolver) MapStrategies() []Strategy {
	return append([]Strategy(nil), r.maps...)
}

func (r *Resolver) ResolveGame(cat database.Catalog, query string) Result {
	return resolve("game", r.games, cat, query)
}

func (r *Resolver) ResolveMap(cat database.Catalog, query string) Result {
	return resolve("map", r.maps, cat, query)
}

// ResolveGameName returns the canonical name of the game query refers to,
// or query itself if nothing matches.
func (r *Resolver) ResolveGameName(cat database.Catalog, query string) string {
	return r.ResolveGame(cat, query).Name
}

// ResolveMapName returns the canonical name of the map query refers to, or
// query itself if nothing matches.
func (r *Resolver) ResolveMapName(cat database.Catalog, query string) string {
	return r.ResolveMap(cat, query).Name
}

func resolve(kind string, chain []Strategy, cat database.Catalog, query string) Result {
	if cat == nil {
		cat = emptyCatalog
	}

	for _, s := range chain {
		name, ok := s.TryResolve(query, cat)
		if !ok {
			continue
		}
		log.Debug().
			Str("kind", kind).
			Str("strategy", s.Name()).
			Str("query", query).
			Str("match", name).
			Msg("archive name resolved")
		return Result{Name: name, Strategy: s.Name(), Resolved: true}
	}

	log.Debug().
		Str("kind", kind).
		Str("query", query).
		Msg("no strategy matched, using name as given")
	return Result{Name: query}
}
