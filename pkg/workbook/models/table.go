package models

// Column is one named column of an extracted table.
type Column struct {
	// Name is the resolved header text for the column.
	Name string `json:"name"`
	// Values holds one typed value per included row, in sheet order.
	Values []Value `json:"values"`
}

// Table is the flat result of extracting one configured table. All columns
// have equal length. A Table is built fresh per extraction and never mutated
// afterwards.
type Table struct {
	// Name is the table name from the configuration.
	Name string `json:"name"`
	// SheetName is the workbook sheet the table was read from.
	SheetName string `json:"sheet_name"`
	// Columns holds the named columns in configured order.
	Columns []Column `json:"columns"`
}

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// NumRows returns the number of data rows in the table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumCols returns the number of columns in the table.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Row returns the values of one row across all columns.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for c, col := range t.Columns {
		row[c] = col.Values[i]
	}
	return row
}
