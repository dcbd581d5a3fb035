package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

func TestWriteCSV(t *testing.T) {
	table := &models.Table{
		Name:      "seasonal_ratings",
		SheetName: "Ratings",
		Columns: []models.Column{
			{Name: "Generator", Values: []models.Value{
				models.TextValue("Bayswater"),
				models.TextValue("Eraring"),
			}},
			{Name: "Summer rating (MW)", Values: []models.Value{
				models.IntValue(2640),
				models.EmptyValue(),
			}},
			{Name: "Derating factor", Values: []models.Value{
				models.FloatValue(0.925),
				models.FloatValue(12345678.5),
			}},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	expected := "Generator,Summer rating (MW),Derating factor\n" +
		"Bayswater,2640,0.925\n" +
		"Eraring,,12345678.5\n"
	if buf.String() != expected {
		t.Errorf("CSV output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	table := &models.Table{
		Name: "locations",
		Columns: []models.Column{
			{Name: "Site", Values: []models.Value{
				models.TextValue("Liddell, NSW"),
			}},
		},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"Liddell, NSW"`) {
		t.Errorf("embedded comma should be quoted, got %q", buf.String())
	}
}

func TestWriteTableNamesText(t *testing.T) {
	bySheet := map[string][]string{
		"Maintenance":       {"maintenance_rates"},
		"Capacity Factors ": {"solar_capacity_factors", "wind_capacity_factors"},
	}
	var buf bytes.Buffer
	if err := WriteTableNames(&buf, bySheet, FormatText); err != nil {
		t.Fatalf("WriteTableNames failed: %v", err)
	}
	expected := "Capacity Factors :\n" +
		"  solar_capacity_factors\n" +
		"  wind_capacity_factors\n" +
		"Maintenance:\n" +
		"  maintenance_rates\n"
	if buf.String() != expected {
		t.Errorf("text listing:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteTableNamesJSON(t *testing.T) {
	bySheet := map[string][]string{"Maintenance": {"maintenance_rates"}}
	var buf bytes.Buffer
	if err := WriteTableNames(&buf, bySheet, FormatJSON); err != nil {
		t.Fatalf("WriteTableNames failed: %v", err)
	}
	expected := "{\n  \"Maintenance\": [\n    \"maintenance_rates\"\n  ]\n}\n"
	if buf.String() != expected {
		t.Errorf("JSON listing = %q, expected %q", buf.String(), expected)
	}
}

func TestWriteTableNamesYAML(t *testing.T) {
	bySheet := map[string][]string{"Maintenance": {"maintenance_rates"}}
	var buf bytes.Buffer
	if err := WriteTableNames(&buf, bySheet, FormatYAML); err != nil {
		t.Fatalf("WriteTableNames failed: %v", err)
	}
	expected := "Maintenance:\n  - maintenance_rates\n"
	if buf.String() != expected {
		t.Errorf("YAML listing = %q, expected %q", buf.String(), expected)
	}
}

func TestWriteTableNamesRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTableNames(&buf, nil, Format("toml")); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
