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

const (
	ModeLive     = "live"
	ModeEmbedded = "embedded"
)

type Resolver struct {
	Mode            string `toml:"mode,omitempty" validate:"omitempty,oneof=live embedded"`
	RandomSelection bool   `toml:"random_selection"`
}

// RandomSelection reports whether "random" queries may pick an archive.
// Embedded mode has no live catalog, so it always disables selection.
func (c *Instance) RandomSelection() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Resolver.Mode == ModeEmbedded {
		return false
	}
	return c.vals.Resolver.RandomSelection
}

func (c *Instance) SetRandomSelection(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Resolver.RandomSelection = enabled
}

func (c *Instance) ResolverMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Resolver.Mode == "" {
		return ModeLive
	}
	return c.vals.Resolver.Mode
}

func (c *Instance) SetResolverMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Resolver.Mode = mode
}
