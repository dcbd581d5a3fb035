package workbook

import (
	"fmt"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/parser"
)

// Error types raised by the extraction core, re-exported so callers can
// match them with errors.As without importing the subpackages.
type (
	// SheetNotFoundError indicates a configured sheet is absent from the
	// workbook.
	SheetNotFoundError = grid.SheetNotFoundError
	// AmbiguousSheetError indicates a sheet name matched more than one
	// workbook sheet ignoring case.
	AmbiguousSheetError = grid.AmbiguousSheetError
	// InvalidConfigError indicates a structurally invalid table config.
	InvalidConfigError = config.InvalidConfigError
	// ConfigRangeError indicates a configured range outside the sheet's
	// populated extent.
	ConfigRangeError = parser.ConfigRangeError
	// MissingHeaderNameError indicates a column with no resolvable header.
	MissingHeaderNameError = parser.MissingHeaderNameError
)

// UnsupportedVersionError indicates no packaged config set matches the
// workbook's version.
type UnsupportedVersionError struct {
	// Version is the version string detected from the workbook.
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("the workbook version %s is not supported", e.Version)
}

// UnknownTableError indicates a requested table name has no config for this
// workbook version.
type UnknownTableError struct {
	// Name is the requested table name.
	Name string
	// Closest is the most similar configured name, for the error message.
	Closest string
}

func (e *UnknownTableError) Error() string {
	msg := fmt.Sprintf("the table name %q is not in the config for this workbook version", e.Name)
	if e.Closest != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Closest)
	}
	return msg
}

// ConfigCheckError indicates extracted data failed one of the sanity checks
// that guard against a misconfigured table range.
type ConfigCheckError struct {
	// Table is the table whose check failed.
	Table string
	// Reason describes the failed check.
	Reason string
}

func (e *ConfigCheckError) Error() string {
	return fmt.Sprintf("config check failed for table %q: %s", e.Table, e.Reason)
}
