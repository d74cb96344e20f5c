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

package config

import (
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyEmbeddedNeverRandom verifies embedded mode always disables random selection.
func TestPropertyEmbeddedNeverRandom(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		mode := rapid.SampledFrom([]string{"", ModeLive, ModeEmbedded}).Draw(t, "mode")
		enabled := rapid.Bool().Draw(t, "enabled")

		cfg := &Instance{}
		cfg.SetResolverMode(mode)
		cfg.SetRandomSelection(enabled)

		got := cfg.RandomSelection()
		want := enabled && mode != ModeEmbedded
		if got != want {
			t.Fatalf("mode=%q enabled=%v: got %v, want %v", mode, enabled, got, want)
		}
	})
}

// TestPropertyAPIListenNeverEmpty verifies the listen address always has a value.
func TestPropertyAPIListenNeverEmpty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		listen := rapid.StringMatching(`([a-z0-9.]{1,15}:[0-9]{1,5})?`).Draw(t, "listen")

		cfg := &Instance{}
		cfg.SetAPIListen(listen)

		got := cfg.APIListen()
		if got == "" {
			t.Fatalf("empty listen address for %q", listen)
		}
		if listen != "" && got != listen {
			t.Fatalf("got %q, want %q", got, listen)
		}
	})
}
