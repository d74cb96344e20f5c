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

// Package api serves archive name resolution over HTTP for lobby clients.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ZaparooProject/archive-resolver/pkg/api/validation"
	"github.com/ZaparooProject/archive-resolver/pkg/config"
	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/ZaparooProject/archive-resolver/pkg/resolver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// CatalogSource hands out a fresh catalog view for each request.
type CatalogSource interface {
	Snapshot() (*database.Snapshot, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ArchivesResponse struct {
	Archives []database.Archive `json:"archives"`
	Total    int                `json:"total"`
}

type server struct {
	src CatalogSource
	res *resolver.Resolver
}

// NewRouter builds the HTTP handler. allowedOrigins is passed to the CORS
// middleware as-is.
func NewRouter(src CatalogSource, res *resolver.Resolver, allowedOrigins []string) http.Handler {
	s := &server{src: src, res: res}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(config.APIRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Accept"},
		ExposedHeaders: []string{},
	}))

	r.Get("/resolve/game", s.handleResolve(s.res.ResolveGame))
	r.Get("/resolve/map", s.handleResolve(s.res.ResolveMap))
	r.Get("/archives", s.handleArchives)

	return r
}

type resolveFunc func(cat database.Catalog, query string) resolver.Result

func (s *server) handleResolve(resolve resolveFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validation.ParseResolveParams(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		snap, ok := s.snapshot(w)
		if !ok {
			return
		}

		result := resolve(snap, params.Name)
		log.Info().
			Str("path", r.URL.Path).
			Str("query", params.Name).
			Str("name", result.Name).
			Bool("resolved", result.Resolved).
			Msg("resolved archive name")
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *server) handleArchives(w http.ResponseWriter, r *http.Request) {
	params, err := validation.ParseListParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	snap, ok := s.snapshot(w)
	if !ok {
		return
	}

	var archives []database.Archive
	if params.Kind == "" {
		archives = snap.All()
	} else {
		archives = snap.ArchivesByKind(database.ArchiveKind(params.Kind))
	}
	if archives == nil {
		archives = []database.Archive{}
	}

	writeJSON(w, http.StatusOK, ArchivesResponse{Archives: archives, Total: len(archives)})
}

func (s *server) snapshot(w http.ResponseWriter) (*database.Snapshot, bool) {
	snap, err := s.src.Snapshot()
	if err != nil {
		log.Error().Err(err).Msg("failed to load archive catalog")
		writeError(w, http.StatusInternalServerError, errors.New("archive catalog unavailable"))
		return nil, false
	}
	if snap == nil {
		snap = database.NewSnapshot(nil)
	}
	return snap, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// Serve runs the API on l until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, l net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown failed: %w", err)
	}
	<-errCh
	return nil
}

// Start listens on the configured address and serves until ctx is done.
func Start(
	ctx context.Context,
	cfg *config.Instance,
	src CatalogSource,
	res *resolver.Resolver,
) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", cfg.APIListen())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.APIListen(), err)
	}
	log.Info().Msgf("api listening on %s", l.Addr())

	return Serve(ctx, l, NewRouter(src, res, cfg.AllowedOrigins()))
}
