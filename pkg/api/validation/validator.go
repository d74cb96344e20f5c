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

// Package validation checks HTTP API query parameters using
// go-playground/validator, with a custom rule for archive kinds.
package validation

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/ZaparooProject/archive-resolver/pkg/database"
	"github.com/go-playground/validator/v10"
)

var ErrMissingParams = errors.New("missing params")

// MaxQueryLength bounds resolve queries.
const MaxQueryLength = 1024

// Validator handles validation of API parameters.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("archivekind", validateArchiveKind)
	return &Validator{validate: v}
}

// DefaultValidator is a shared validator instance for API use.
var DefaultValidator = NewValidator()

// Validate validates a struct and returns a formatted error if validation fails.
func (v *Validator) Validate(params any) error {
	if err := v.validate.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewError(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ResolveParams are the query parameters of the resolve endpoints. An empty
// name is a valid query, but the parameter itself must be present.
type ResolveParams struct {
	Name string `validate:"max=1024"`
}

// ListParams are the query parameters of the archive listing endpoint.
type ListParams struct {
	Kind string `validate:"omitempty,archivekind"`
}

// ParseResolveParams reads and validates ResolveParams from a query string.
func ParseResolveParams(q url.Values) (ResolveParams, error) {
	if !q.Has("name") {
		return ResolveParams{}, ErrMissingParams
	}
	params := ResolveParams{Name: q.Get("name")}
	if err := DefaultValidator.Validate(&params); err != nil {
		return ResolveParams{}, err
	}
	return params, nil
}

// ParseListParams reads and validates ListParams from a query string.
func ParseListParams(q url.Values) (ListParams, error) {
	params := ListParams{Kind: q.Get("kind")}
	if err := DefaultValidator.Validate(&params); err != nil {
		return ListParams{}, err
	}
	return params, nil
}

func validateArchiveKind(fl validator.FieldLevel) bool {
	return database.ArchiveKind(fl.Field().String()).Known()
}
