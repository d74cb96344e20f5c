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

// Package archiveindex imports a CSV listing of installed archives into the
// archive catalog store.
package archiveindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Entry is one row of an index file. The header row is required.
type Entry struct {
	Name      string `csv:"name"`
	ShortName string `csv:"short_name"`
	Version   string `csv:"version"`
	Kind      string `csv:"kind"`
	Path      string `csv:"path"`
	Checksum  string `csv:"checksum"`
}

func (e Entry) Archive() database.Archive {
	return database.Archive{
		Name:      e.Name,
		ShortName: e.ShortName,
		Version:   e.Version,
		Kind:      database.ArchiveKind(e.Kind),
		Path:      e.Path,
		Checksum:  e.Checksum,
	}
}

// Load reads an index file without validating its rows.
func Load(fs afero.Fs, path string) ([]database.Archive, error) {
	entries, err := readEntries(fs, path)
	if err != nil {
		return nil, err
	}

	archives := make([]database.Archive, len(entries))
	for i, e := range entries {
		archives[i] = e.Archive()
	}
	return archives, nil
}

func readEntries(fs afero.Fs, path string) ([]Entry, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive index: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close archive index")
		}
	}()

	entries := make([]Entry, 0)
	err = gocsv.Unmarshal(file, &entries)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return entries, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to unmarshal archive index CSV: %w", err)
	}

	return entries, nil
}

// Import adds every valid row of the index file at path to db and records
// the index time. Invalid rows are logged and counted as skipped. The
// context is checked between rows.
func Import(ctx context.Context, fs afero.Fs, path string, db database.ArchiveDBI) (database.ImportStats, error) {
	var stats database.ImportStats

	archives, err := Load(fs, path)
	if err != nil {
		return stats, err
	}

	for i := range archives {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("archive import cancelled: %w", err)
		}

		a := archives[i]
		if err := a.Validate(); err != nil {
			log.Warn().Err(err).Int("row", i+2).Msg("skipping invalid index row")
			stats.Skipped++
			continue
		}
		if err := db.AddArchive(&a); err != nil {
			return stats, fmt.Errorf("failed to add archive %q: %w", a.Name, err)
		}
		stats.Added++
	}

	if err := db.UpdateLastIndexed(); err != nil {
		return stats, fmt.Errorf("failed to update last indexed time: %w", err)
	}

	log.Info().
		Int("added", stats.Added).
		Int("skipped", stats.Skipped).
		Str("path", path).
		Msg("archive index imported")
	return stats, nil
}
