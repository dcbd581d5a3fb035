package grid

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.IntValue(123)},
		{"-100", models.IntValue(-100)},
		{"123.45", models.FloatValue(123.45)},
		{"hello", models.TextValue("hello")},
		{"1,234", models.TextValue("1,234")},
	}
	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.expected {
			t.Errorf("parseValue(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestSheetLoadsValuesAndMerges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	const name = "Sheet1"

	if err := f.SetCellValue(name, "A1", "Region"); err != nil {
		t.Fatalf("failed to set A1: %v", err)
	}
	if err := f.SetCellValue(name, "B2", 42); err != nil {
		t.Fatalf("failed to set B2: %v", err)
	}
	if err := f.MergeCell(name, "A1", "B1"); err != nil {
		t.Fatalf("failed to merge A1:B1: %v", err)
	}

	wb := FromFile(f, nil)
	sheet, err := wb.Sheet(name)
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}

	if got := sheet.Cell(1, 1).Value; got != models.TextValue("Region") {
		t.Errorf("A1 = %v, expected Region", got)
	}
	merged := sheet.Cell(1, 2)
	if !merged.Value.IsEmpty() {
		t.Errorf("B1 should be empty, got %v", merged.Value)
	}
	if merged.Merge == nil || merged.Merge.Row != 1 || merged.Merge.Col != 1 {
		t.Errorf("B1 merge anchor = %v, expected (1,1)", merged.Merge)
	}
	if got := sheet.ResolveMerge(merged); got != models.TextValue("Region") {
		t.Errorf("ResolveMerge(B1) = %v, expected Region", got)
	}
	if got := sheet.Cell(2, 2).Value; got != models.IntValue(42) {
		t.Errorf("B2 = %v, expected 42", got)
	}
	// Coordinates outside the populated extent resolve to empty cells.
	if !sheet.Cell(100, 100).Value.IsEmpty() {
		t.Error("out-of-extent cell should be empty")
	}
}

func TestSheetStrikeThrough(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	const name = "Sheet1"

	if err := f.SetCellValue(name, "A1", "Liddell"); err != nil {
		t.Fatalf("failed to set A1: %v", err)
	}
	if err := f.SetCellValue(name, "A2", "Bayswater"); err != nil {
		t.Fatalf("failed to set A2: %v", err)
	}
	strike, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Strike: true}})
	if err != nil {
		t.Fatalf("failed to create style: %v", err)
	}
	if err := f.SetCellStyle(name, "A1", "A1", strike); err != nil {
		t.Fatalf("failed to apply style: %v", err)
	}

	sheet, err := FromFile(f, nil).Sheet(name)
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if !sheet.Cell(1, 1).StruckThrough {
		t.Error("A1 should be struck through")
	}
	if sheet.Cell(2, 1).StruckThrough {
		t.Error("A2 should not be struck through")
	}
}

func TestIsRowBlank(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	const name = "Sheet1"

	for addr, value := range map[string]interface{}{
		"A1": "x",
		"A2": " ",
		"B2": " ",
		"B3": "y",
	} {
		if err := f.SetCellValue(name, addr, value); err != nil {
			t.Fatalf("failed to set %s: %v", addr, err)
		}
	}

	sheet, err := FromFile(f, nil).Sheet(name)
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}

	tests := []struct {
		row      int
		expected bool
	}{
		{1, false},
		{2, true}, // whitespace and non-breaking space count as blank
		{3, false},
		{4, true}, // beyond the populated extent
	}
	for _, tt := range tests {
		if got := sheet.IsRowBlank(tt.row, 1, 2); got != tt.expected {
			t.Errorf("IsRowBlank(%d) = %v, expected %v", tt.row, got, tt.expected)
		}
	}
}

func TestSheetNameResolution(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Capacity Factors "); err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	wb := FromFile(f, nil)

	resolved, err := wb.ResolveSheetName("capacity factors ")
	if err != nil {
		t.Fatalf("ResolveSheetName failed: %v", err)
	}
	if resolved != "Capacity Factors " {
		t.Errorf("resolved = %q, expected %q", resolved, "Capacity Factors ")
	}

	_, err = wb.Sheet("Missing Sheet")
	var notFound *SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SheetNotFoundError, got %v", err)
	}
	if notFound.SheetName != "Missing Sheet" {
		t.Errorf("error sheet name = %q", notFound.SheetName)
	}
}
