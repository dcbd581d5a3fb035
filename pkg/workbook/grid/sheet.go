package grid

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

type coord struct {
	row, col int
}

// Sheet is an immutable 1-based grid of cells. Coordinates outside the
// populated extent resolve to empty cells.
type Sheet struct {
	// Name is the resolved workbook sheet name.
	Name string
	// MaxRow is the last populated row.
	MaxRow int
	// MaxCol is the last populated column.
	MaxCol int

	cells map[coord]models.Cell
}

// Cell returns the cell at the given 1-based row and column.
func (s *Sheet) Cell(row, col int) models.Cell {
	return s.cells[coord{row, col}]
}

// ResolveMerge returns the cell's value, substituting the merge anchor's
// value when the cell is an empty member of a merge span.
func (s *Sheet) ResolveMerge(c models.Cell) models.Value {
	if c.Value.IsEmpty() && c.Merge != nil {
		return s.cells[coord{c.Merge.Row, c.Merge.Col}].Value
	}
	return c.Value
}

// IsRowBlank reports whether every cell of the row within the column range
// is blank. Text consisting only of whitespace or non-breaking spaces counts
// as blank; the workbook uses such cells as spacers.
func (s *Sheet) IsRowBlank(row, startCol, endCol int) bool {
	for col := startCol; col <= endCol; col++ {
		if !isBlank(s.cells[coord{row, col}].Value) {
			return false
		}
	}
	return true
}

func isBlank(v models.Value) bool {
	if v.IsEmpty() {
		return true
	}
	if v.Kind != models.KindText {
		return false
	}
	return strings.Trim(v.Text, " \t ") == ""
}

// loadSheet reads one sheet into an immutable grid: cell values, merge-span
// membership and strike-through flags.
func loadSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	s := &Sheet{
		Name:   name,
		MaxRow: len(rows),
		cells:  make(map[coord]models.Cell),
	}
	for rowIdx, row := range rows {
		if len(row) > s.MaxCol {
			s.MaxCol = len(row)
		}
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			s.cells[coord{rowIdx + 1, colIdx + 1}] = models.Cell{Value: parseValue(raw)}
		}
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			return nil, err
		}
		anchor := &models.MergeAnchor{Row: startRow, Col: startCol}
		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				cell := s.cells[coord{r, c}]
				cell.Merge = anchor
				// The value lives only at the top-left cell of the span.
				if r != startRow || c != startCol {
					cell.Value = models.EmptyValue()
				}
				s.cells[coord{r, c}] = cell
			}
		}
		if endRow > s.MaxRow {
			s.MaxRow = endRow
		}
		if endCol > s.MaxCol {
			s.MaxCol = endCol
		}
	}

	// Bind strike-through flags, caching style lookups per style index.
	styleStrike := make(map[int]bool)
	for key, cell := range s.cells {
		addr, err := excelize.CoordinatesToCellName(key.col, key.row)
		if err != nil {
			return nil, err
		}
		idx, err := f.GetCellStyle(name, addr)
		if err != nil {
			return nil, err
		}
		strike, ok := styleStrike[idx]
		if !ok {
			style, err := f.GetStyle(idx)
			if err != nil {
				return nil, err
			}
			strike = style != nil && style.Font != nil && style.Font.Strike
			styleStrike[idx] = strike
		}
		if strike {
			cell.StruckThrough = true
			s.cells[key] = cell
		}
	}

	return s, nil
}

// parseValue converts a raw cell string to a typed value. Integers parse to
// KindInt, decimals to KindFloat, everything else stays text. The source
// stores numbers as text inconsistently, so lexical parsing here is the only
// reliable signal.
func parseValue(raw string) models.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.IntValue(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.FloatValue(f)
	}
	return models.TextValue(raw)
}
