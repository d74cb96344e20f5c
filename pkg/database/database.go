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

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

/*
 * Record types and interfaces shared by the catalog store and the
 * resolver. The concrete sqlite store lives in archivedb.
 */

type ArchiveKind string

const (
	KindPrimaryGame ArchiveKind = "primary-game"
	KindHiddenGame  ArchiveKind = "hidden-game"
	KindMap         ArchiveKind = "map"
	KindBase        ArchiveKind = "base"
	KindUnknown     ArchiveKind = "unknown"
)

// ArchiveKinds lists every kind the catalog accepts.
var ArchiveKinds = []ArchiveKind{
	KindPrimaryGame,
	KindHiddenGame,
	KindMap,
	KindBase,
	KindUnknown,
}

var (
	ErrInvalidArchive  = errors.New("invalid archive")
	ErrArchiveNotFound = errors.New("archive not found")
)

// Archive is a single installed content archive. Name is the canonical,
// versioned name the rest of the engine refers to it by.
type Archive struct {
	Added     time.Time   `json:"added"`
	Name      string      `json:"name" validate:"required"`
	ShortName string      `json:"shortName"`
	Version   string      `json:"version"`
	Kind      ArchiveKind `json:"kind" validate:"required,archivekind"`
	Path      string      `json:"path"`
	Checksum  string      `json:"checksum" validate:"omitempty,hexadecimal"`
	DBID      int64       `json:"-"`
}

var archiveValidator = newArchiveValidator()

func newArchiveValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("archivekind", func(fl validator.FieldLevel) bool {
		return ArchiveKind(fl.Field().String()).Known()
	})
	return v
}

// Known reports whether k is one of ArchiveKinds.
func (k ArchiveKind) Known() bool {
	for _, known := range ArchiveKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Validate checks the archive has the fields the catalog requires. A nil
// return means the archive is valid; the error only describes what's missing.
func (a *Archive) Validate() error {
	err := archiveValidator.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidArchive, a.Name, strings.Join(fields, ", "))
}

// Catalog is the read-only view of installed archives used during name
// resolution. Listings must be returned in a stable order.
type Catalog interface {
	// ArchiveByName returns the archive with exactly this canonical name.
	ArchiveByName(name string) (Archive, bool)
	// ArchivesByKind returns every archive of the given kind.
	ArchivesByKind(kind ArchiveKind) []Archive
	// MapNames returns the canonical names of all map archives.
	MapNames() []string
}

type ImportStats struct {
	Added   int
	Skipped int
}

/*
 * Interfaces for external deps
 */

type GenericDBI interface {
	Open() error
	UnsafeGetSQLDb() *sql.DB
	Truncate() error
	Allocate() error
	MigrateUp() error
	Vacuum() error
	Close() error
	GetDBPath() string
}

type ArchiveDBI interface {
	GenericDBI
	AddArchive(a *Archive) error
	DeleteArchive(name string) error
	GetArchive(name string) (Archive, error)
	GetArchivesByKind(kind ArchiveKind) ([]Archive, error)
	GetMapNames() ([]string, error)
	AllArchives() ([]Archive, error)
	UpdateLastIndexed() error
	GetLastIndexed() (time.Time, error)
	Snapshot() (*Snapshot, error)
}
