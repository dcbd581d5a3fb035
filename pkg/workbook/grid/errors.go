package grid

import "fmt"

// SheetNotFoundError indicates a configured sheet name is absent from the
// workbook.
type SheetNotFoundError struct {
	// SheetName is the name that was looked up.
	SheetName string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q cannot be found in the workbook", e.SheetName)
}

// AmbiguousSheetError indicates a sheet name matched more than one workbook
// sheet under case-insensitive comparison.
type AmbiguousSheetError struct {
	// SheetName is the name that was looked up.
	SheetName string
}

func (e *AmbiguousSheetError) Error() string {
	return fmt.Sprintf("workbook sheet %q is not unique", e.SheetName)
}
