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

// Package rapid resolves rapid tags (rapid://repo:tag) to canonical archive
// names using the versions.gz files rapid keeps in each data directory.
package rapid

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	Scheme       = "rapid"
	PoolDir      = "rapid"
	VersionsFile = "versions.gz"
)

var ErrTagNotFound = errors.New("rapid tag not found")

// Entry is a single line of a versions.gz file.
type Entry struct {
	Tag     string `csv:"tag"`
	Hash    string `csv:"hash"`
	Depends string `csv:"depends"`
	Name    string `csv:"name"`
}

// ParseURI extracts the tag from a rapid URI. The scheme is matched
// case-insensitively and the tag must be non-empty.
func ParseURI(uri string) (string, bool) {
	scheme, tag, ok := strings.Cut(uri, "://")
	if !ok || !strings.EqualFold(scheme, Scheme) || tag == "" {
		return "", false
	}
	return tag, true
}

type Resolver struct {
	fs       afero.Fs
	dataDirs []string
}

func NewResolver(fs afero.Fs, dataDirs []string) *Resolver {
	return &Resolver{
		fs:       fs,
		dataDirs: dataDirs,
	}
}

func (*Resolver) ParseTagURI(query string) (string, bool) {
	return ParseURI(query)
}

// ResolveTag returns the archive name of the first entry matching tag.
// Data directories are searched in order and versions files within a
// directory in lexical path order.
func (r *Resolver) ResolveTag(tag string) (string, error) {
	for _, path := range r.VersionsFiles() {
		entries, err := ReadVersions(r.fs, path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable rapid versions file")
			continue
		}
		for _, e := range entries {
			if e.Tag == tag {
				log.Debug().
					Str("tag", tag).
					Str("name", e.Name).
					Str("path", path).
					Msg("resolved rapid tag")
				return e.Name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTagNotFound, tag)
}

// VersionsFiles lists every versions.gz under the rapid pool of each data
// directory. Missing pools are ignored.
func (r *Resolver) VersionsFiles() []string {
	var files []string
	for _, dir := range r.dataDirs {
		root := filepath.Join(dir, PoolDir)
		err := afero.Walk(r.fs, root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					log.Warn().Err(err).Str("path", path).Msg("error walking rapid pool")
				}
				return nil
			}
			if !info.IsDir() && info.Name() == VersionsFile {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Str("root", root).Msg("failed to walk rapid pool")
		}
	}
	return files
}

// ReadVersions parses a gzipped, headerless versions file.
func ReadVersions(fsys afero.Fs, path string) ([]Entry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open versions file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close versions file")
		}
	}()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer func() {
		if closeErr := gz.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close gzip stream")
		}
	}()

	return parseVersions(gz)
}

func parseVersions(in io.Reader) ([]Entry, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	reader.LazyQuotes = true

	var entries []Entry
	err := gocsv.UnmarshalCSVWithoutHeaders(reader, &entries)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to parse versions file: %w", err)
	}
	return entries, nil
}
