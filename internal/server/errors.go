// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the configuration carries no HTTP
// address, leaving nothing to serve the upload endpoints on.
var errNoServersAreCreated = errors.New("no servers are created")
