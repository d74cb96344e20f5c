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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/archive-resolver/pkg/cli"
	"github.com/ZaparooProject/archive-resolver/pkg/config"
	"github.com/ZaparooProject/archive-resolver/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)
	exit, err := flags.Pre(os.Args[1:], os.Stdout)
	if exit || err != nil {
		return err
	}

	dataDir := config.DataDir()
	err = helpers.InitLogging(dataDir, []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}})
	if err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	helpers.SetDebugLogging(*flags.Debug)

	cfg, err := config.NewConfig(config.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	helpers.SetDebugLogging(*flags.Debug || cfg.DebugLogging())
	log.Debug().Msgf("config loaded from %s", cfg.Path())

	ctx := context.Background()
	db, err := cli.OpenDB(ctx, dataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close archive database")
		}
	}()

	fs := afero.NewOsFs()
	env := &cli.Env{
		Cfg:      cfg,
		DB:       db,
		Resolver: cli.NewResolver(cfg, fs),
		Fs:       fs,
		Out:      os.Stdout,
	}

	err = flags.Run(ctx, env)
	if errors.Is(err, cli.ErrNoAction) {
		flag.Usage()
		return nil
	}
	return err
}
