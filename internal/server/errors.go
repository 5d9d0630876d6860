// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("no http handler to serve")
	errNoHTTPAddress = errors.New("http address is not configured")
)
