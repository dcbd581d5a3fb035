// Package workbook extracts configured data tables from ISP inputs and
// assumptions workbooks.
package workbook

import "go.uber.org/zap"

// DefaultConfigDir is the root directory of the packaged per-version table
// config sets, relative to the working directory.
const DefaultConfigDir = "config"

// Options configures a Parser.
type Options struct {
	// ConfigDir is an explicit directory of table config YAML files. When
	// set, workbook version detection is skipped entirely.
	ConfigDir string
	// VersionedConfigDir is the root directory holding one config
	// subdirectory per workbook version. Defaults to DefaultConfigDir.
	VersionedConfigDir string
	// ConfigChecks controls whether extracted tables are checked for signs
	// of a misconfigured range. If nil, checks run.
	ConfigChecks *bool
	// Logger receives structured progress logs. If nil, logging is off.
	Logger *zap.Logger
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldCheckConfig reports whether config sanity checks run on extraction.
func (o Options) ShouldCheckConfig() bool {
	if o.ConfigChecks != nil {
		return *o.ConfigChecks
	}
	return true
}

func (o Options) versionedConfigDir() string {
	if o.VersionedConfigDir != "" {
		return o.VersionedConfigDir
	}
	return DefaultConfigDir
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
