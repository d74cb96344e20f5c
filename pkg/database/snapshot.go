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

package database

// Snapshot is an immutable, in-memory Catalog. Listing order is the order
// the archives were passed to NewSnapshot. When two archives share a name
// the first one wins, mirroring the unique Name column of the store.
type Snapshot struct {
	byName   map[string]int
	byKind   map[ArchiveKind][]Archive
	archives []Archive
	mapNames []string
}

func NewSnapshot(archives []Archive) *Snapshot {
	s := &Snapshot{
		byName:   make(map[string]int, len(archives)),
		byKind:   make(map[ArchiveKind][]Archive),
		archives: make([]Archive, 0, len(archives)),
	}

	for _, a := range archives {
		if _, ok := s.byName[a.Name]; ok {
			continue
		}
		s.byName[a.Name] = len(s.archives)
		s.archives = append(s.archives, a)
		s.byKind[a.Kind] = append(s.byKind[a.Kind], a)
		if a.Kind == KindMap {
			s.mapNames = append(s.mapNames, a.Name)
		}
	}

	return s
}

func (s *Snapshot) ArchiveByName(name string) (Archive, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Archive{}, false
	}
	return s.archives[i], true
}

func (s *Snapshot) ArchivesByKind(kind ArchiveKind) []Archive {
	found := s.byKind[kind]
	out := make([]Archive, len(found))
	copy(out, found)
	return out
}

func (s *Snapshot) MapNames() []string {
	out := make([]string, len(s.mapNames))
	copy(out, s.mapNames)
	return out
}

// All returns every archive in listing order.
func (s *Snapshot) All() []Archive {
	out := make([]Archive, len(s.archives))
	copy(out, s.archives)
	return out
}

func (s *Snapshot) Len() int {
	return len(s.archives)
}
