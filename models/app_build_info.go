// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoNA = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags. Empty values
// read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: orNA(version), date: orNA(date), commit: orNA(commit)}
}

func (a AppBuildInfo) Version() string { return a.version }

func (a AppBuildInfo) Date() string { return a.date }

func (a AppBuildInfo) Commit() string { return a.commit }

// String renders the three lines printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}

func orNA(s string) string {
	if s == "" {
		return buildInfoNA
	}
	return s
}
