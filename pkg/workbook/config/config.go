// Package config defines the declarative description of where a table lives
// within a workbook sheet, and loads such descriptions from YAML files.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

var validate = validator.New()

// TableConfig describes the location and shape of one table within a sheet.
// A config is validated once at load time and never mutated afterwards.
type TableConfig struct {
	// Name is the table name, taken from the YAML mapping key.
	Name string `yaml:"-" validate:"required"`
	// SheetName is the sheet the table is located on.
	SheetName string `yaml:"sheet_name" validate:"required"`
	// HeaderRows lists the row(s) holding the table column names, in
	// ascending order. A scalar in YAML is normalized to a one-element list.
	HeaderRows IntList `yaml:"header_rows" validate:"required,min=1"`
	// EndRow is the last row of table data.
	EndRow int `yaml:"end_row" validate:"required,gt=0"`
	// ColumnRange is the column span in alphabetical format, e.g. "B:AC".
	ColumnRange string `yaml:"column_range" validate:"required"`
	// SkipRows lists body rows to exclude. Accepts a scalar, a list, or a
	// {start, end} mapping in YAML.
	SkipRows IntList `yaml:"skip_rows"`
	// ColumnsWithMergedRows lists columns, in alphabetical format, whose
	// values are forward filled to reconstruct vertically merged cells.
	ColumnsWithMergedRows StringList `yaml:"columns_with_merged_rows"`
	// ForwardFillValues gates the forward filling of merged-row columns.
	// Defaults to true; set false for tables with genuinely sparse columns.
	ForwardFillValues *bool `yaml:"forward_fill_values"`
}

// ForwardFill reports whether merged-row columns should be forward filled.
func (c *TableConfig) ForwardFill() bool {
	return c.ForwardFillValues == nil || *c.ForwardFillValues
}

// FirstHeaderRow returns the first header row.
func (c *TableConfig) FirstHeaderRow() int {
	return c.HeaderRows[0]
}

// LastHeaderRow returns the last header row.
func (c *TableConfig) LastHeaderRow() int {
	return c.HeaderRows[len(c.HeaderRows)-1]
}

// FirstBodyRow returns the first data row, directly below the last header.
func (c *TableConfig) FirstBodyRow() int {
	return c.LastHeaderRow() + 1
}

// ColumnBounds parses ColumnRange into 1-based start and end column indices.
func (c *TableConfig) ColumnBounds() (start, end int, err error) {
	parts := strings.Split(c.ColumnRange, ":")
	if len(parts) != 2 {
		return 0, 0, &InvalidConfigError{
			Table:  c.Name,
			Reason: fmt.Sprintf("column_range %q is not in the form 'A:B'", c.ColumnRange),
		}
	}
	start, err = excelize.ColumnNameToNumber(parts[0])
	if err != nil {
		return 0, 0, &InvalidConfigError{
			Table:  c.Name,
			Reason: fmt.Sprintf("column_range start %q: %v", parts[0], err),
		}
	}
	end, err = excelize.ColumnNameToNumber(parts[1])
	if err != nil {
		return 0, 0, &InvalidConfigError{
			Table:  c.Name,
			Reason: fmt.Sprintf("column_range end %q: %v", parts[1], err),
		}
	}
	return start, end, nil
}

// MergedColumnOffsets translates ColumnsWithMergedRows to zero-based offsets
// within the configured column range, sorted ascending.
func (c *TableConfig) MergedColumnOffsets() ([]int, error) {
	if len(c.ColumnsWithMergedRows) == 0 {
		return nil, nil
	}
	start, end, err := c.ColumnBounds()
	if err != nil {
		return nil, err
	}
	offsets := make([]int, 0, len(c.ColumnsWithMergedRows))
	for _, letter := range c.ColumnsWithMergedRows {
		col, err := excelize.ColumnNameToNumber(letter)
		if err != nil {
			return nil, &InvalidConfigError{
				Table:  c.Name,
				Reason: fmt.Sprintf("columns_with_merged_rows entry %q: %v", letter, err),
			}
		}
		if col < start || col > end {
			return nil, &InvalidConfigError{
				Table:  c.Name,
				Reason: fmt.Sprintf("merged-row column %q is outside column_range %q", letter, c.ColumnRange),
			}
		}
		offsets = append(offsets, col-start)
	}
	sort.Ints(offsets)
	return offsets, nil
}

// Validate checks the structural invariants of the config. It is called by
// the loaders; call it directly for manually constructed configs.
func (c *TableConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &InvalidConfigError{Table: c.Name, Reason: err.Error()}
	}
	for i := 1; i < len(c.HeaderRows); i++ {
		if c.HeaderRows[i] <= c.HeaderRows[i-1] {
			return &InvalidConfigError{
				Table:  c.Name,
				Reason: fmt.Sprintf("header_rows %v are not strictly ascending", []int(c.HeaderRows)),
			}
		}
	}
	if c.EndRow < c.LastHeaderRow() {
		return &InvalidConfigError{
			Table:  c.Name,
			Reason: fmt.Sprintf("end_row %d precedes the last header row %d", c.EndRow, c.LastHeaderRow()),
		}
	}
	for _, row := range c.SkipRows {
		if row < c.FirstBodyRow() || row > c.EndRow {
			return &InvalidConfigError{
				Table:  c.Name,
				Reason: fmt.Sprintf("skip_rows entry %d is outside the body range %d..%d", row, c.FirstBodyRow(), c.EndRow),
			}
		}
	}
	start, end, err := c.ColumnBounds()
	if err != nil {
		return err
	}
	if start > end {
		return &InvalidConfigError{
			Table:  c.Name,
			Reason: fmt.Sprintf("column_range %q start column follows its end column", c.ColumnRange),
		}
	}
	if _, err := c.MergedColumnOffsets(); err != nil {
		return err
	}
	return nil
}

// InvalidConfigError indicates a structural validation failure of a table
// config at construction time.
type InvalidConfigError struct {
	// Table is the name of the offending table config.
	Table string
	// Reason describes the violated invariant.
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config for table %q: %s", e.Table, e.Reason)
}
