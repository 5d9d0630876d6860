// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

// Package validators checks inbound request bodies before they reach the
// services.
//
// Core concepts:
//   - Validator: generic interface to validate request values.
//   - NormalizePhone: parses a phone number with libphonenumber and returns
//     it in E.164 format. Only Cameroonian (+237) numbers are accepted.
//
// Rules are expressed with ozzo-validation; a failed validation returns
// validation.Errors keyed by JSON field name.
package validators

import "context"

// Validator defines a generic validation interface for request values.
type Validator interface {

	// Validate validates the provided input. Both value and pointer forms
	// of a supported request are accepted.
	Validate(context.Context, any) error
}
