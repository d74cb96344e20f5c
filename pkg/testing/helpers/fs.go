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
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// WriteFile writes content to path, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists in the filesystem
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}

// ErrClose is returned by every file opened through a CloseErrorFs.
var ErrClose = errors.New("close failed")

// CloseErrorFs wraps an afero.Fs so that opened files fail to close after
// releasing the underlying file.
type CloseErrorFs struct {
	afero.Fs
}

func (c CloseErrorFs) Open(name string) (afero.File, error) {
	f, err := c.Fs.Open(name)
	if err != nil {
		return nil, err //nolint:wrapcheck // passthrough of the wrapped fs
	}
	return closeErrorFile{File: f}, nil
}

type closeErrorFile struct {
	afero.File
}

func (f closeErrorFile) Close() error {
	if err := f.File.Close(); err != nil {
		return err //nolint:wrapcheck // passthrough of the wrapped file
	}
	return ErrClose
}

type indexRow struct {
	Name      string `csv:"name"`
	ShortName string `csv:"short_name"`
	Version   string `csv:"version"`
	Kind      string `csv:"kind"`
	Path      string `csv:"path"`
	Checksum  string `csv:"checksum"`
}

// CreateIndexFile writes archives as a catalog index CSV with a header row.
func (h *FSHelper) CreateIndexFile(path string, archives []database.Archive) error {
	rows := make([]indexRow, len(archives))
	for i, a := range archives {
		rows[i] = indexRow{
			Name:      a.Name,
			ShortName: a.ShortName,
			Version:   a.Version,
			Kind:      string(a.Kind),
			Path:      a.Path,
			Checksum:  a.Checksum,
		}
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return fmt.Errorf("failed to marshal index CSV: %w", err)
	}
	return h.WriteFile(path, data)
}

// CreateVersionsFile writes a gzipped rapid versions file from raw CSV lines.
func (h *FSHelper) CreateVersionsFile(path string, lines string) error {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(lines)); err != nil {
		return fmt.Errorf("failed to compress versions file: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish versions file: %w", err)
	}
	return h.WriteFile(path, buf.Bytes())
}
