package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ConfigRangeError indicates the configured row or column range addresses
// cells outside the sheet's populated extent, or leaves no body rows.
type ConfigRangeError struct {
	// Table is the table name from the config.
	Table string
	// Sheet is the sheet the table was configured on.
	Sheet string
	// Reason describes which bound was violated.
	Reason string
}

func (e *ConfigRangeError) Error() string {
	return fmt.Sprintf("table %q on sheet %q: %s", e.Table, e.Sheet, e.Reason)
}

// MissingHeaderNameError indicates a column's collapsed header text is empty
// across all header rows. Columns are never silently numbered; an unresolved
// header would corrupt downstream column identity.
type MissingHeaderNameError struct {
	// Table is the table name from the config.
	Table string
	// Sheet is the sheet the table was configured on.
	Sheet string
	// Column is the 1-based sheet column index with no header text.
	Column int
}

func (e *MissingHeaderNameError) Error() string {
	letter, err := excelize.ColumnNumberToName(e.Column)
	if err != nil {
		letter = fmt.Sprintf("#%d", e.Column)
	}
	return fmt.Sprintf("table %q on sheet %q: no header name resolved for column %s", e.Table, e.Sheet, letter)
}
