// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package http

import "errors"

// Request decoding errors. They never reach clients as is: handlers answer
// with the matching message from the app package.
var (
	// ErrInvalidIdentifier is returned when a path parameter is not a
	// positive integer.
	ErrInvalidIdentifier = errors.New("invalid identifier in path")

	// ErrInvalidBody is returned when the request body is not valid JSON for
	// the expected request type.
	ErrInvalidBody = errors.New("invalid request body")
)
