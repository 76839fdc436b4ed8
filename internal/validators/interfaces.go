// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services'
// business logic.
//
// A [Validator] accepts a model and, optionally, the names of the fields to
// check. Without field names every rule for the model type is applied.
package validators

import "context"

// Validator validates value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
