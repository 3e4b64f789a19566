// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the interactive uploader app.
type Client interface {
	// Run starts the TUI session loop and blocks until the user quits.
	Run() error
}
