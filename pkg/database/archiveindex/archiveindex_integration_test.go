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

package archiveindex

import (
	"context"
	"testing"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/ZaparooProject/archive-resolver/pkg/testing/fixtures"
	testhelpers "github.com/ZaparooProject/archive-resolver/pkg/testing/helpers"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportIntoArchiveDB(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	db := testhelpers.NewInMemoryArchiveDB(t, clock)

	fs := testhelpers.NewMemoryFS()
	require.NoError(t, fs.CreateIndexFile(indexPath, fixtures.Catalog().All()))

	stats, err := Import(context.Background(), fs.Fs, indexPath, db)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Catalog().Len(), stats.Added)

	last, err := db.GetLastIndexed()
	require.NoError(t, err)
	assert.True(t, last.Equal(clock.Now()))

	snap, err := db.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, fixtures.Catalog().MapNames(), snap.MapNames())

	games := snap.ArchivesByKind(database.KindPrimaryGame)
	require.Len(t, games, len(fixtures.Games()))
	assert.Equal(t, "BA", games[0].ShortName)

	// re-importing the same index updates rows in place
	stats, err = Import(context.Background(), fs.Fs, indexPath, db)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Catalog().Len(), stats.Added)
	all, err := db.AllArchives()
	require.NoError(t, err)
	assert.Len(t, all, fixtures.Catalog().Len())
}
