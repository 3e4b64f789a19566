// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD and surfaced in version
// output for diagnostics and release traceability. Empty values render as
// "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{Version: version, Date: date, Commit: commit}
}

// String renders the three-line version banner printed at process start.
// It implements the [fmt.Stringer] interface.
func (b BuildInfo) String() string {
	return fmt.Sprintf(
		"Build version: %s\nBuild date: %s\nBuild commit: %s",
		valueOrNA(b.Version), valueOrNA(b.Date), valueOrNA(b.Commit),
	)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
