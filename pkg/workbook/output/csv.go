// Package output serializes extracted tables and table listings.
package output

import (
	"encoding/csv"
	"io"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

// WriteCSV writes the table as delimited text: one header record built from
// the resolved column names, then one record per row. Missing values
// serialize as empty fields and numeric values as plain decimals.
func WriteCSV(w io.Writer, table *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers()); err != nil {
		return err
	}
	record := make([]string, table.NumCols())
	for i := 0; i < table.NumRows(); i++ {
		for c, v := range table.Row(i) {
			record[c] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
