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

package archivedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

var ErrNullSQL = errors.New("ArchiveDB is not connected")

const sqliteConnParams = "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"

// ArchiveDB is the sqlite backed archive catalog.
type ArchiveDB struct {
	sql    *sql.DB
	ctx    context.Context
	clock  clockwork.Clock
	dbPath string
}

func OpenArchiveDB(ctx context.Context, dbPath string) (*ArchiveDB, error) {
	db := &ArchiveDB{
		ctx:    ctx,
		clock:  clockwork.NewRealClock(),
		dbPath: dbPath,
	}
	err := db.Open()
	return db, err
}

func (db *ArchiveDB) Open() error {
	exists := true
	_, err := os.Stat(db.dbPath)
	if err != nil {
		exists = false
		mkdirErr := os.MkdirAll(filepath.Dir(db.dbPath), 0o750)
		if mkdirErr != nil {
			return fmt.Errorf("failed to create directory for database: %w", mkdirErr)
		}
	}
	sqlInstance, err := sql.Open("sqlite3", db.dbPath+sqliteConnParams)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.sql = sqlInstance
	if !exists {
		log.Info().Str("path", db.dbPath).Msg("allocating new archive database")
		return db.Allocate()
	}
	return db.MigrateUp()
}

func (db *ArchiveDB) GetDBPath() string {
	return db.dbPath
}

func (db *ArchiveDB) UnsafeGetSQLDb() *sql.DB {
	return db.sql
}

func (db *ArchiveDB) Truncate() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlTruncate(db.ctx, db.sql)
}

func (db *ArchiveDB) Allocate() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlAllocate(db.sql)
}

func (db *ArchiveDB) MigrateUp() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlMigrateUp(db.sql)
}

func (db *ArchiveDB) Vacuum() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlVacuum(db.ctx, db.sql)
}

func (db *ArchiveDB) Close() error {
	if db.sql == nil {
		return nil
	}
	err := db.sql.Close()
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// SetSQLForTesting allows injection of a sql.DB instance for testing purposes.
// This method should only be used in tests to set up temporary databases.
func (db *ArchiveDB) SetSQLForTesting(ctx context.Context, sqlDB *sql.DB, clock clockwork.Clock) error {
	db.sql = sqlDB
	db.ctx = ctx
	db.clock = clock
	return db.Allocate()
}

// SetDBPathForTesting sets the path reported by GetDBPath.
func (db *ArchiveDB) SetDBPathForTesting(path string) {
	db.dbPath = path
}

// AddArchive validates a and inserts it, replacing the metadata of any
// existing archive with the same name. A zero Added time is set to now.
func (db *ArchiveDB) AddArchive(a *database.Archive) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Added.IsZero() {
		a.Added = db.clock.Now()
	}
	return sqlAddArchive(db.ctx, db.sql, *a)
}

func (db *ArchiveDB) DeleteArchive(name string) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlDeleteArchive(db.ctx, db.sql, name)
}

func (db *ArchiveDB) GetArchive(name string) (database.Archive, error) {
	if db.sql == nil {
		return database.Archive{}, ErrNullSQL
	}
	return sqlGetArchive(db.ctx, db.sql, name)
}

func (db *ArchiveDB) GetArchivesByKind(kind database.ArchiveKind) ([]database.Archive, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlGetArchivesByKind(db.ctx, db.sql, kind)
}

func (db *ArchiveDB) GetMapNames() ([]string, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlGetMapNames(db.ctx, db.sql)
}

func (db *ArchiveDB) AllArchives() ([]database.Archive, error) {
	if db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlAllArchives(db.ctx, db.sql)
}

func (db *ArchiveDB) UpdateLastIndexed() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlUpdateLastIndexed(db.ctx, db.sql, db.clock.Now())
}

func (db *ArchiveDB) GetLastIndexed() (time.Time, error) {
	if db.sql == nil {
		return time.Time{}, ErrNullSQL
	}
	return sqlGetLastIndexed(db.ctx, db.sql)
}

// Snapshot reads the whole catalog into an immutable in-memory view so a
// resolution sees one consistent set of archives.
func (db *ArchiveDB) Snapshot() (*database.Snapshot, error) {
	archives, err := db.AllArchives()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot archive catalog: %w", err)
	}
	return database.NewSnapshot(archives), nil
}
