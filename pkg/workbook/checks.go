package workbook

import (
	"fmt"
	"strings"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

// noteMarkers are substrings that identify footnote text below a table. If
// one turns up inside the first column, the configured end row has run past
// the table into its notes.
var noteMarkers = []string{"Notes:", "Note:", "Source:", "Sources:"}

// checkTable runs sanity checks that catch misconfigured table ranges: the
// workbook's tables are surrounded by blank cells, so data found directly
// outside the configured range means the range is wrong.
func checkTable(sheet *grid.Sheet, cfg *config.TableConfig, table *models.Table) error {
	startCol, endCol, err := cfg.ColumnBounds()
	if err != nil {
		return err
	}
	checks := []func() error{
		func() error { return checkNoDataAboveHeader(sheet, cfg, startCol) },
		func() error { return checkDataEndsWhereExpected(sheet, cfg, startCol) },
		func() error { return checkRightAdjacentColumnBlank(sheet, cfg, endCol) },
		func() error { return checkLeftAdjacentColumnBlank(sheet, cfg, startCol) },
		func() error { return checkLastColumnNotEmpty(cfg, table) },
		func() error { return checkFirstColumnComplete(cfg, table) },
		func() error { return checkFirstColumnFreeOfNotes(cfg, table) },
		func() error { return checkColumnNamesUnique(cfg, table) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// The cell above the second configured column is blank for every known
// table, even where the first column carries notes, so it is the probe for
// a header row configured too low.
func checkNoDataAboveHeader(sheet *grid.Sheet, cfg *config.TableConfig, startCol int) error {
	row := cfg.FirstHeaderRow() - 1
	if row < 1 {
		return nil
	}
	if !sheet.IsRowBlank(row, startCol+1, startCol+1) {
		return &ConfigCheckError{
			Table:  cfg.Name,
			Reason: "there is data or a header above the first header row",
		}
	}
	return nil
}

// The cell below the second configured column is blank for every known
// table, so it is the probe for an end row configured too high.
func checkDataEndsWhereExpected(sheet *grid.Sheet, cfg *config.TableConfig, startCol int) error {
	if !sheet.IsRowBlank(cfg.EndRow+1, startCol+1, startCol+1) {
		return &ConfigCheckError{
			Table:  cfg.Name,
			Reason: "there is data in the row after the defined table end",
		}
	}
	return nil
}

func checkRightAdjacentColumnBlank(sheet *grid.Sheet, cfg *config.TableConfig, endCol int) error {
	for row := cfg.FirstBodyRow(); row <= cfg.EndRow; row++ {
		cell := sheet.Cell(row, endCol+1)
		// A stray backtick turns up in otherwise blank cells of some
		// workbook versions.
		if cell.Value.Kind == models.KindText && strings.TrimSpace(cell.Value.Text) == "`" {
			continue
		}
		if !sheet.IsRowBlank(row, endCol+1, endCol+1) {
			return &ConfigCheckError{
				Table:  cfg.Name,
				Reason: "there is data in the column adjacent to the last column in the table",
			}
		}
	}
	return nil
}

func checkLeftAdjacentColumnBlank(sheet *grid.Sheet, cfg *config.TableConfig, startCol int) error {
	// Column A is a workbook-wide spacer and some sheets keep a hidden
	// placeholder column there, so tables starting at column B are exempt.
	if startCol <= 2 {
		return nil
	}
	header := sheet.ResolveMerge(sheet.Cell(cfg.FirstHeaderRow(), startCol-1))
	if header.Kind == models.KindText && strings.Contains(header.Text, "DO NOT DELETE THIS COLUMN") {
		return nil
	}
	for row := cfg.FirstBodyRow(); row <= cfg.EndRow; row++ {
		if !sheet.IsRowBlank(row, startCol-1, startCol-1) {
			return &ConfigCheckError{
				Table:  cfg.Name,
				Reason: "there is data in the column adjacent to the first column in the table",
			}
		}
	}
	return nil
}

func checkLastColumnNotEmpty(cfg *config.TableConfig, table *models.Table) error {
	if table.NumCols() == 0 {
		return nil
	}
	last := table.Columns[table.NumCols()-1]
	for _, v := range last.Values {
		if !v.IsEmpty() {
			return nil
		}
	}
	return &ConfigCheckError{
		Table:  cfg.Name,
		Reason: fmt.Sprintf("the last column %q is empty", last.Name),
	}
}

// The first column of every table is an ID column with no blanks; missing
// values there mean the end row runs into a following table.
func checkFirstColumnComplete(cfg *config.TableConfig, table *models.Table) error {
	if table.NumCols() == 0 {
		return nil
	}
	for _, v := range table.Columns[0].Values {
		if v.IsEmpty() {
			return &ConfigCheckError{
				Table:  cfg.Name,
				Reason: "the first column contains missing values indicating the table end row is incorrectly specified",
			}
		}
	}
	return nil
}

func checkFirstColumnFreeOfNotes(cfg *config.TableConfig, table *models.Table) error {
	if table.NumCols() == 0 {
		return nil
	}
	for _, v := range table.Columns[0].Values {
		if v.Kind != models.KindText {
			continue
		}
		for _, marker := range noteMarkers {
			if strings.Contains(v.Text, marker) {
				return &ConfigCheckError{
					Table:  cfg.Name,
					Reason: fmt.Sprintf("the first column contains the substring %q", marker),
				}
			}
		}
	}
	return nil
}

func checkColumnNamesUnique(cfg *config.TableConfig, table *models.Table) error {
	seen := make(map[string]bool, table.NumCols())
	for _, col := range table.Columns {
		if seen[col.Name] {
			return &ConfigCheckError{
				Table:  cfg.Name,
				Reason: fmt.Sprintf("there are duplicate column names in the table: %q", col.Name),
			}
		}
		seen[col.Name] = true
	}
	return nil
}
