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

package mocks

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/stretchr/testify/mock"
)

// MockArchiveDBI is a mock implementation of the ArchiveDBI interface using testify/mock
type MockArchiveDBI struct {
	mock.Mock
}

func NewMockArchiveDBI() *MockArchiveDBI {
	return &MockArchiveDBI{}
}

func (m *MockArchiveDBI) mockErr(op string, args mock.Arguments, i int) error {
	if err := args.Error(i); err != nil {
		return fmt.Errorf("mock ArchiveDBI %s failed: %w", op, err)
	}
	return nil
}

func (m *MockArchiveDBI) Open() error {
	return m.mockErr("open", m.Called(), 0)
}

func (m *MockArchiveDBI) UnsafeGetSQLDb() *sql.DB {
	args := m.Called()
	if db, ok := args.Get(0).(*sql.DB); ok {
		return db
	}
	return nil
}

func (m *MockArchiveDBI) Truncate() error {
	return m.mockErr("truncate", m.Called(), 0)
}

func (m *MockArchiveDBI) Allocate() error {
	return m.mockErr("allocate", m.Called(), 0)
}

func (m *MockArchiveDBI) MigrateUp() error {
	return m.mockErr("migrate up", m.Called(), 0)
}

func (m *MockArchiveDBI) Vacuum() error {
	return m.mockErr("vacuum", m.Called(), 0)
}

func (m *MockArchiveDBI) Close() error {
	return m.mockErr("close", m.Called(), 0)
}

func (m *MockArchiveDBI) GetDBPath() string {
	return m.Called().String(0)
}

func (m *MockArchiveDBI) AddArchive(a *database.Archive) error {
	return m.mockErr("add archive", m.Called(a), 0)
}

func (m *MockArchiveDBI) DeleteArchive(name string) error {
	return m.mockErr("delete archive", m.Called(name), 0)
}

func (m *MockArchiveDBI) GetArchive(name string) (database.Archive, error) {
	args := m.Called(name)
	a, _ := args.Get(0).(database.Archive)
	return a, m.mockErr("get archive", args, 1)
}

func (m *MockArchiveDBI) GetArchivesByKind(kind database.ArchiveKind) ([]database.Archive, error) {
	args := m.Called(kind)
	archives, _ := args.Get(0).([]database.Archive)
	return archives, m.mockErr("get archives by kind", args, 1)
}

func (m *MockArchiveDBI) GetMapNames() ([]string, error) {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names, m.mockErr("get map names", args, 1)
}

func (m *MockArchiveDBI) AllArchives() ([]database.Archive, error) {
	args := m.Called()
	archives, _ := args.Get(0).([]database.Archive)
	return archives, m.mockErr("all archives", args, 1)
}

func (m *MockArchiveDBI) UpdateLastIndexed() error {
	return m.mockErr("update last indexed", m.Called(), 0)
}

func (m *MockArchiveDBI) GetLastIndexed() (time.Time, error) {
	args := m.Called()
	ts, _ := args.Get(0).(time.Time)
	return ts, m.mockErr("get last indexed", args, 1)
}

func (m *MockArchiveDBI) Snapshot() (*database.Snapshot, error) {
	args := m.Called()
	snap, _ := args.Get(0).(*database.Snapshot)
	return snap, m.mockErr("snapshot", args, 1)
}
