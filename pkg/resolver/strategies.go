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
	"strings"
	"unicode/utf8"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/rs/zerolog/log"
)

// Strategy turns a query into a canonical archive name, or reports that it
// has no match. Strategies never fail in any other way.
type Strategy interface {
	Name() string
	TryResolve(query string, cat database.Catalog) (string, bool)
}

// RandSource supplies non-negative random integers.
type RandSource interface {
	Int() int
}

// TagResolver maps external tag URIs to canonical archive names.
type TagResolver interface {
	ParseTagURI(query string) (tag string, ok bool)
	ResolveTag(tag string) (string, error)
}

// ExactNameStrategy matches a query that already is the canonical name of a
// valid archive of Kind.
type ExactNameStrategy struct {
	Kind database.ArchiveKind
}

func (s ExactNameStrategy) Name() string {
	if s.Kind == database.KindMap {
		return StrategyMapExactName
	}
	return StrategyGameExactName
}

func (s ExactNameStrategy) TryResolve(query string, cat database.Catalog) (string, bool) {
	a, ok := cat.ArchiveByName(query)
	if !ok {
		return "", false
	}
	if err := a.Validate(); err != nil {
		log.Debug().Err(err).Str("query", query).Msg("exact name match is not a valid archive")
		return "", false
	}
	if a.Kind != s.Kind {
		return "", false
	}
	return query, true
}

// ShortNameStrategy matches a game's short name ignoring ASCII case and
// prefers the highest version.
//
// On a version key tie the later archive in catalog order replaces the
// current pick whenever its version string compares greater than or equal
// to the current one, so the result among equal versions depends on
// catalog order rather than being a strict maximum.
type ShortNameStrategy struct{}

func (ShortNameStrategy) Name() string {
	return StrategyGameShortName
}

func (ShortNameStrategy) TryResolve(query string, cat database.Catalog) (string, bool) {
	lowerQuery := lowerASCII(query)

	var (
		found       bool
		bestName    string
		bestVersion string
		bestKey     uint64
	)
	for _, a := range cat.ArchivesByKind(database.KindPrimaryGame) {
		if lowerASCII(a.ShortName) != lowerQuery {
			continue
		}

		key := ExtractVersionNumber(a.Version)
		if key > bestKey {
			found = true
			bestName, bestVersion, bestKey = a.Name, a.Version, key
			continue
		}
		if key == bestKey && strings.Compare(bestVersion, a.Version) <= 0 {
			found = true
			bestName, bestVersion = a.Name, a.Version
		}
	}

	return bestName, found
}

// SubstringStrategy matches maps whose name contains every whitespace
// separated word of the query, ignoring ASCII case. The shortest matching name
// wins; equal lengths keep the first in catalog order.
type SubstringStrategy struct{}

func (SubstringStrategy) Name() string {
	return StrategyMapSubstring
}

func (SubstringStrategy) TryResolve(query string, cat database.Catalog) (string, bool) {
	words := asciiFields(lowerASCII(query))

	found := false
	best := ""
	for _, name := range cat.MapNames() {
		if !containsAll(lowerASCII(name), words) {
			continue
		}
		if !found || len(name) < len(best) {
			found = true
			best = name
		}
	}

	return best, found
}

// lowerASCII folds A-Z and leaves every other byte alone, so names that are
// not valid UTF-8 keep their distinct bytes.
func lowerASCII(s string) string {
	i := 0
	for i < len(s) && (s[i] < 'A' || s[i] > 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// asciiFields splits s around runs of ASCII whitespace only.
func asciiFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r < utf8.RuneSelf && isSpace(byte(r))
	})
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

// RandomStrategy picks a random archive of Kind when the query is any part
// of the word "random". It never matches when disabled or without a Rand.
type RandomStrategy struct {
	Rand    RandSource
	Kind    database.ArchiveKind
	Enabled bool
}

func (s RandomStrategy) Name() string {
	if s.Kind == database.KindMap {
		return StrategyMapRandom
	}
	return StrategyGameRandom
}

func (s RandomStrategy) TryResolve(query string, cat database.Catalog) (string, bool) {
	if !s.Enabled || s.Rand == nil || !strings.Contains(randomWord, query) {
		return "", false
	}

	var names []string
	if s.Kind == database.KindMap {
		names = cat.MapNames()
	} else {
		archives := cat.ArchivesByKind(s.Kind)
		names = make([]string, len(archives))
		for i, a := range archives {
			names[i] = a.Name
		}
	}
	if len(names) == 0 {
		return "", false
	}

	// uint conversion keeps a misbehaving negative source in range
	i := uint(s.Rand.Int()) % uint(len(names))
	return names[i], true
}

// RapidTagStrategy looks up rapid tag URIs through Tags.
type RapidTagStrategy struct {
	Tags TagResolver
}

func (RapidTagStrategy) Name() string {
	return StrategyGameRapidTag
}

func (s RapidTagStrategy) TryResolve(query string, _ database.Catalog) (string, bool) {
	if s.Tags == nil {
		return "", false
	}
	tag, ok := s.Tags.ParseTagURI(query)
	if !ok {
		return "", false
	}

	name, err := s.Tags.ResolveTag(tag)
	if err != nil {
		log.Warn().Err(err).Str("tag", tag).Msg("rapid tag lookup failed")
		return "", false
	}
	return name, name != ""
}
