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
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/archive-resolver/pkg/database/archivedb"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
)

// NewInMemoryArchiveDB opens a migrated archive store in a temp file and
// closes it when the test ends. A nil clock uses the real clock.
func NewInMemoryArchiveDB(t *testing.T, clock clockwork.Clock) *archivedb.ArchiveDB {
	t.Helper()

	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	// temp file rather than :memory: so every pooled connection sees the same data
	dbPath := filepath.Join(t.TempDir(), "archivedb_test.db")
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	db := &archivedb.ArchiveDB{}
	err = db.SetSQLForTesting(context.Background(), sqlDB, clock)
	if err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			t.Errorf("Failed to close SQL database after setup error: %v", closeErr)
		}
		t.Fatalf("Failed to set up ArchiveDB for testing: %v", err)
	}
	db.SetDBPathForTesting(dbPath)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close ArchiveDB: %v", err)
		}
	})

	return db
}
