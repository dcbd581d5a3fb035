package parser

import (
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
)

// includeRows returns the sheet row indices of the body rows that belong in
// the output, in sheet order. A row is excluded when it is a configured skip
// row, when every cell in the column range is blank, or when its first
// configured cell is struck through (the workbook's marker for a retired
// entry). A row is never partially included.
func includeRows(sheet *grid.Sheet, cfg *config.TableConfig, startCol, endCol int) []int {
	skip := make(map[int]bool, len(cfg.SkipRows))
	for _, row := range cfg.SkipRows {
		skip[row] = true
	}

	var rows []int
	for row := cfg.FirstBodyRow(); row <= cfg.EndRow; row++ {
		if skip[row] {
			continue
		}
		if sheet.IsRowBlank(row, startCol, endCol) {
			continue
		}
		if sheet.Cell(row, startCol).StruckThrough {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
