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

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/ZaparooProject/archive-resolver/pkg/api"
	"github.com/ZaparooProject/archive-resolver/pkg/config"
	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/ZaparooProject/archive-resolver/pkg/database/archivedb"
	"github.com/ZaparooProject/archive-resolver/pkg/database/archiveindex"
	"github.com/ZaparooProject/archive-resolver/pkg/helpers"
	"github.com/ZaparooProject/archive-resolver/pkg/rapid"
	"github.com/ZaparooProject/archive-resolver/pkg/resolver"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var ErrNoAction = errors.New("no action given")

type Flags struct {
	Game    *string
	Map     *string
	Import  *string
	List    *string
	Serve   *bool
	Version *bool
	Debug   *bool
	fs      *flag.FlagSet
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs: fs,
		Game: fs.String(
			"game",
			"",
			"resolve a game query and print the archive name",
		),
		Map: fs.String(
			"map",
			"",
			"resolve a map query and print the archive name",
		),
		Import: fs.String(
			"import",
			"",
			"import archives from a CSV index file",
		),
		List: fs.String(
			"list",
			"",
			"list archives of a kind, or \"all\"",
		),
		Serve: fs.Bool(
			"serve",
			false,
			"start the HTTP API",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging and print resolve strategies",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and actions flags that need no environment. It returns
// true if the program should exit.
func (f *Flags) Pre(args []string, out io.Writer) (bool, error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "Archive Resolver v%s\n", config.AppVersion)
		return true, nil
	}
	return false, nil
}

// Env holds everything the flag actions need.
type Env struct {
	Cfg      *config.Instance
	DB       database.ArchiveDBI
	Resolver *resolver.Resolver
	Fs       afero.Fs
	Out      io.Writer
}

// NewResolver builds a resolver from config: crypto random selection and
// rapid tag lookup over the configured data directories.
func NewResolver(cfg *config.Instance, fs afero.Fs) *resolver.Resolver {
	return resolver.New(
		resolver.WithRand(helpers.CryptoRand{}),
		resolver.WithRandomSelection(cfg.RandomSelection()),
		resolver.WithTagResolver(rapid.NewResolver(fs, cfg.DataDirs())),
	)
}

// OpenDB opens the archive store in dataDir.
func OpenDB(ctx context.Context, dataDir string) (*archivedb.ArchiveDB, error) {
	if err := helpers.EnsureDirectories(dataDir); err != nil {
		return nil, err
	}
	db, err := archivedb.OpenArchiveDB(ctx, filepath.Join(dataDir, config.ArchiveDbFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	return db, nil
}

// Run actions the first matching flag. Only one action runs per call.
func (f *Flags) Run(ctx context.Context, env *Env) error {
	switch {
	case *f.Import != "":
		return runImport(ctx, env, *f.Import)
	case *f.List != "":
		return runList(env, *f.List)
	case f.isFlagPassed("game"):
		return f.runResolve(env, *f.Game, env.Resolver.ResolveGame)
	case f.isFlagPassed("map"):
		return f.runResolve(env, *f.Map, env.Resolver.ResolveMap)
	case *f.Serve:
		return runServe(ctx, env)
	default:
		return ErrNoAction
	}
}

func runImport(ctx context.Context, env *Env, path string) error {
	stats, err := archiveindex.Import(ctx, env.Fs, path, env.DB)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	_, _ = fmt.Fprintf(env.Out, "Imported %d archives, skipped %d\n", stats.Added, stats.Skipped)
	return nil
}

func runList(env *Env, kind string) error {
	var (
		archives []database.Archive
		err      error
	)
	if kind == "all" {
		archives, err = env.DB.AllArchives()
	} else {
		k := database.ArchiveKind(kind)
		if !k.Known() {
			return fmt.Errorf("unknown archive kind: %s", kind)
		}
		archives, err = env.DB.GetArchivesByKind(k)
	}
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSHORT\tVERSION\tKIND")
	for _, a := range archives {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, a.ShortName, a.Version, a.Kind)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write archive list: %w", err)
	}
	return nil
}

type resolveFunc func(cat database.Catalog, query string) resolver.Result

func (f *Flags) runResolve(env *Env, query string, resolve resolveFunc) error {
	snap, err := env.DB.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to load archive catalog: %w", err)
	}

	result := resolve(snap, query)
	log.Info().
		Str("query", query).
		Str("name", result.Name).
		Bool("resolved", result.Resolved).
		Msg("resolved archive name")

	if *f.Debug {
		strategy := result.Strategy
		if !result.Resolved {
			strategy = "unresolved"
		}
		_, _ = fmt.Fprintf(env.Out, "%s\t(%s)\n", result.Name, strategy)
		return nil
	}
	_, _ = fmt.Fprintln(env.Out, result.Name)
	return nil
}

func runServe(ctx context.Context, env *Env) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if path := env.Cfg.IndexFile(); path != "" {
		g.Go(func() error {
			stats, err := archiveindex.Import(gctx, env.Fs, path, env.DB)
			if err != nil {
				// the API keeps serving the existing catalog
				log.Error().Err(err).Str("path", path).Msg("startup index import failed")
				return nil
			}
			log.Info().Msgf("startup import added %d archives", stats.Added)
			return nil
		})
	}

	g.Go(func() error {
		return api.Start(gctx, env.Cfg, env.DB, env.Resolver)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve failed: %w", err)
	}
	return nil
}
