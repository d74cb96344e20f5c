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

type Archives struct {
	IndexFile string   `toml:"index_file,omitempty"`
	DataDirs  []string `toml:"data_dirs,omitempty,multiline" validate:"dive,required"`
}

// DataDirs returns the Spring data directories searched for rapid pools,
// in search order.
func (c *Instance) DataDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.vals.Archives.DataDirs...)
}

func (c *Instance) SetDataDirs(dirs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Archives.DataDirs = append([]string(nil), dirs...)
}

func (c *Instance) IndexFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Archives.IndexFile
}

func (c *Instance) SetIndexFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Archives.IndexFile = path
}
