// Package parser implements the table-extraction engine: it turns a sheet
// grid and a table config into a single flat table with one header row and
// typed columns.
package parser

import (
	"fmt"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

// Extract produces the configured table from the sheet. Extraction is a pure
// function of the sheet and the config: it holds no state across calls, so
// concurrent extraction of different tables from the same loaded workbook is
// safe.
func Extract(sheet *grid.Sheet, cfg *config.TableConfig) (*models.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startCol, endCol, err := cfg.ColumnBounds()
	if err != nil {
		return nil, err
	}
	if err := checkRange(sheet, cfg, startCol, endCol); err != nil {
		return nil, err
	}

	headers, err := resolveHeaders(sheet, cfg, startCol, endCol)
	if err != nil {
		return nil, err
	}
	rows := includeRows(sheet, cfg, startCol, endCol)

	columns := make([]models.Column, 0, endCol-startCol+1)
	for col := startCol; col <= endCol; col++ {
		values := make([]models.Value, len(rows))
		for i, row := range rows {
			values[i] = sheet.Cell(row, col).Value
		}
		columns = append(columns, models.Column{
			Name:   headers[col-startCol],
			Values: values,
		})
	}

	if cfg.ForwardFill() {
		offsets, err := cfg.MergedColumnOffsets()
		if err != nil {
			return nil, err
		}
		for _, offset := range offsets {
			forwardFill(columns[offset].Values)
		}
	}

	for _, col := range columns {
		for i, v := range col.Values {
			col.Values[i] = coerceValue(v)
		}
	}

	return &models.Table{
		Name:      cfg.Name,
		SheetName: sheet.Name,
		Columns:   columns,
	}, nil
}

// checkRange verifies the configured rows and columns fall inside the
// sheet's populated extent and leave at least one body row.
func checkRange(sheet *grid.Sheet, cfg *config.TableConfig, startCol, endCol int) error {
	rangeErr := func(format string, args ...any) error {
		return &ConfigRangeError{
			Table:  cfg.Name,
			Sheet:  sheet.Name,
			Reason: fmt.Sprintf(format, args...),
		}
	}
	if cfg.EndRow <= cfg.LastHeaderRow() {
		return rangeErr("end_row %d leaves no body rows below the last header row %d", cfg.EndRow, cfg.LastHeaderRow())
	}
	if cfg.FirstHeaderRow() > sheet.MaxRow {
		return rangeErr("first header row %d is beyond the sheet's last populated row %d", cfg.FirstHeaderRow(), sheet.MaxRow)
	}
	if cfg.EndRow > sheet.MaxRow {
		return rangeErr("end_row %d is beyond the sheet's last populated row %d", cfg.EndRow, sheet.MaxRow)
	}
	if startCol > sheet.MaxCol {
		return rangeErr("first column %d is beyond the sheet's last populated column %d", startCol, sheet.MaxCol)
	}
	if endCol > sheet.MaxCol {
		return rangeErr("last column %d is beyond the sheet's last populated column %d", endCol, sheet.MaxCol)
	}
	return nil
}
