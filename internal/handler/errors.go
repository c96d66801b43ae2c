// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address, so no transport handler can be
	// initialised. This is a fatal misconfiguration at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServicesProvided is returned by NewHandlers when services is nil.
	errNoServicesProvided = errors.New("no services provided")
)
