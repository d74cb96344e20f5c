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
	"embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/rs/zerolog/log"
)

const DBConfigLastIndexedAt = "LastIndexedAt"

//go:embed migrations/*.sql
var migrationFiles embed.FS

func sqlMigrateUp(db *sql.DB) error {
	if err := database.MigrateUp(db, migrationFiles, "migrations"); err != nil {
		return fmt.Errorf("failed to run archive database migrations: %w", err)
	}
	return nil
}

func sqlAllocate(db *sql.DB) error {
	return sqlMigrateUp(db)
}

//goland:noinspection SqlWithoutWhere
func sqlTruncate(ctx context.Context, db *sql.DB) error {
	sqlStmt := `
	delete from Archives;
	delete from DBConfig;
	vacuum;
	`
	_, err := db.ExecContext(ctx, sqlStmt)
	if err != nil {
		return fmt.Errorf("failed to truncate database: %w", err)
	}
	return nil
}

func sqlVacuum(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `vacuum;`)
	if err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}

func closeStmt(stmt *sql.Stmt) {
	if err := stmt.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close sql statement")
	}
}

//nolint:gocritic // struct passed for DB insertion
func sqlAddArchive(ctx context.Context, db *sql.DB, a database.Archive) error {
	stmt, err := db.PrepareContext(ctx, `
		insert into Archives(
			Name, ShortName, Version, Kind, Path, Checksum, Added
		) values (?, ?, ?, ?, ?, ?, ?)
		on conflict(Name) do update set
			ShortName = excluded.ShortName,
			Version = excluded.Version,
			Kind = excluded.Kind,
			Path = excluded.Path,
			Checksum = excluded.Checksum;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare archive insert statement: %w", err)
	}
	defer closeStmt(stmt)

	_, err = stmt.ExecContext(ctx,
		a.Name,
		a.ShortName,
		a.Version,
		string(a.Kind),
		a.Path,
		a.Checksum,
		a.Added.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to execute archive insert: %w", err)
	}
	return nil
}

func sqlDeleteArchive(ctx context.Context, db *sql.DB, name string) error {
	stmt, err := db.PrepareContext(ctx, `delete from Archives where Name = ?;`)
	if err != nil {
		return fmt.Errorf("failed to prepare archive delete statement: %w", err)
	}
	defer closeStmt(stmt)

	res, err := stmt.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to execute archive delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", database.ErrArchiveNotFound, name)
	}
	return nil
}

const archiveColumns = `DBID, Name, ShortName, Version, Kind, Path, Checksum, Added`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArchive(row rowScanner) (database.Archive, error) {
	var a database.Archive
	var kind string
	var added int64
	err := row.Scan(
		&a.DBID,
		&a.Name,
		&a.ShortName,
		&a.Version,
		&kind,
		&a.Path,
		&a.Checksum,
		&added,
	)
	if err != nil {
		return a, err //nolint:wrapcheck // wrapped by callers
	}
	a.Kind = database.ArchiveKind(kind)
	a.Added = time.Unix(added, 0)
	return a, nil
}

func sqlGetArchive(ctx context.Context, db *sql.DB, name string) (database.Archive, error) {
	row := db.QueryRowContext(ctx,
		`select `+archiveColumns+` from Archives where Name = ?;`,
		name,
	)
	a, err := scanArchive(row)
	if errors.Is(err, sql.ErrNoRows) {
		return database.Archive{}, fmt.Errorf("%w: %s", database.ErrArchiveNotFound, name)
	} else if err != nil {
		return database.Archive{}, fmt.Errorf("failed to scan archive: %w", err)
	}
	return a, nil
}

func queryArchives(ctx context.Context, db *sql.DB, query string, args ...any) ([]database.Archive, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archives: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close rows")
		}
	}()

	list := make([]database.Archive, 0)
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return list, fmt.Errorf("failed to scan archive: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return list, fmt.Errorf("failed to iterate archives: %w", err)
	}
	return list, nil
}

// Listings are ordered by DBID so the catalog iteration order is the
// order archives were first added.

func sqlGetArchivesByKind(
	ctx context.Context,
	db *sql.DB,
	kind database.ArchiveKind,
) ([]database.Archive, error) {
	return queryArchives(ctx, db,
		`select `+archiveColumns+` from Archives where Kind = ? order by DBID asc;`,
		string(kind),
	)
}

func sqlAllArchives(ctx context.Context, db *sql.DB) ([]database.Archive, error) {
	return queryArchives(ctx, db,
		`select `+archiveColumns+` from Archives order by DBID asc;`,
	)
}

func sqlGetMapNames(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`select Name from Archives where Kind = ? order by DBID asc;`,
		string(database.KindMap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query map names: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close rows")
		}
	}()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return names, fmt.Errorf("failed to scan map name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return names, fmt.Errorf("failed to iterate map names: %w", err)
	}
	return names, nil
}

func sqlUpdateLastIndexed(ctx context.Context, db *sql.DB, now time.Time) error {
	_, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO DBConfig (Name, Value) VALUES (?, ?)",
		DBConfigLastIndexedAt,
		strconv.FormatInt(now.Unix(), 10),
	)
	if err != nil {
		return fmt.Errorf("failed to set last indexed timestamp: %w", err)
	}
	return nil
}

func sqlGetLastIndexed(ctx context.Context, db *sql.DB) (time.Time, error) {
	var rawTimestamp string
	err := db.QueryRowContext(ctx,
		"SELECT Value FROM DBConfig WHERE Name = ?",
		DBConfigLastIndexedAt,
	).Scan(&rawTimestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	} else if err != nil {
		return time.Time{}, fmt.Errorf("failed to scan timestamp: %w", err)
	}

	timestamp, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	return time.Unix(timestamp, 0), nil
}
