package parser

import "github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"

// forwardFill replaces each empty value with the nearest preceding non-empty
// value in the same column. The input is the already row-filtered sequence
// for one column, so filling never crosses the table boundary. A leading
// empty run has no preceding value and stays empty; it signals genuinely
// missing data rather than a merged span.
func forwardFill(values []models.Value) {
	last := models.EmptyValue()
	for i, v := range values {
		if v.IsEmpty() {
			values[i] = last
		} else {
			last = v
		}
	}
}
