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

package helpers

import (
	"testing"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryArchiveDB(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	db := NewInMemoryArchiveDB(t, clock)
	assert.NotEmpty(t, db.GetDBPath())

	require.NoError(t, db.AddArchive(&database.Archive{Name: "Tabula-v4", Kind: database.KindMap}))
	got, err := db.GetArchive("Tabula-v4")
	require.NoError(t, err)
	assert.True(t, got.Added.Equal(clock.Now()))
}

func TestFSHelperIndexFile(t *testing.T) {
	t.Parallel()

	h := NewMemoryFS()
	require.NoError(t, h.CreateIndexFile("/a/b/index.csv", []database.Archive{
		{Name: "Tabula-v4", Kind: database.KindMap, Path: "maps/tabula.sd7"},
	}))
	assert.True(t, h.FileExists("/a/b/index.csv"))
	assert.False(t, h.FileExists("/a/b/missing.csv"))
}
