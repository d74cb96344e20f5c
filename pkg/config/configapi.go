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

const DefaultAPIListen = "127.0.0.1:7484"

var DefaultAllowedOrigins = []string{"http://*", "https://*"}

type API struct {
	Listen         string   `toml:"listen,omitempty" validate:"omitempty,hostname_port"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
}

func (c *Instance) APIListen() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.API.Listen == "" {
		return DefaultAPIListen
	}
	return c.vals.API.Listen
}

func (c *Instance) SetAPIListen(listen string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.API.Listen = listen
}

func (c *Instance) AllowedOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.vals.API.AllowedOrigins) == 0 {
		return append([]string(nil), DefaultAllowedOrigins...)
	}
	return append([]string(nil), c.vals.API.AllowedOrigins...)
}
