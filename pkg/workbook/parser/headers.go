package parser

import (
	"strings"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
)

// headerSeparator joins the collapsed header-row values of one column.
const headerSeparator = " "

// resolveHeaders collapses the configured header rows into one name per
// column. Cells left empty by a merge span take their anchor's value before
// collapsing, empty values are skipped, and a value repeating the one above
// it is suppressed so a merged top header is not repeated in every column's
// name. A column with no header text at all is an error.
func resolveHeaders(sheet *grid.Sheet, cfg *config.TableConfig, startCol, endCol int) ([]string, error) {
	names := make([]string, 0, endCol-startCol+1)
	for col := startCol; col <= endCol; col++ {
		var parts []string
		for _, row := range cfg.HeaderRows {
			value := sheet.ResolveMerge(sheet.Cell(row, col))
			text := sanitiseHeaderText(value.String())
			if text == "" {
				continue
			}
			if len(parts) > 0 && parts[len(parts)-1] == text {
				continue
			}
			parts = append(parts, text)
		}
		if len(parts) == 0 {
			return nil, &MissingHeaderNameError{Table: cfg.Name, Sheet: sheet.Name, Column: col}
		}
		names = append(names, strings.Join(parts, headerSeparator))
	}
	return names, nil
}
