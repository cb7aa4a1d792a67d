// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming suite requests before
// any service logic runs.
//
// Validation is field-scoped: callers may pass the names of the fields to
// check, otherwise each request type has a default set. Validators never
// touch the store, so a failed validation never mutates state.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
