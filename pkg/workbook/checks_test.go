package workbook

import (
	"errors"
	"strings"
	"testing"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
)

func openTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := Open(saveTestWorkbook(t), Options{ConfigDir: writeConfigDir(t)})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestConfigCheckFailures(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.TableConfig
		reason string
	}{
		{
			name: "data after configured end row",
			cfg: config.TableConfig{
				Name:        "maintenance_short",
				SheetName:   "Maintenance",
				HeaderRows:  config.IntList{7},
				EndRow:      9,
				ColumnRange: "B:D",
			},
			reason: "row after the defined table end",
		},
		{
			name: "data above configured header row",
			cfg: config.TableConfig{
				Name:        "maintenance_low_header",
				SheetName:   "Maintenance",
				HeaderRows:  config.IntList{8},
				EndRow:      10,
				ColumnRange: "B:D",
			},
			reason: "above the first header row",
		},
		{
			name: "data right of configured columns",
			cfg: config.TableConfig{
				Name:        "maintenance_narrow",
				SheetName:   "Maintenance",
				HeaderRows:  config.IntList{7},
				EndRow:      10,
				ColumnRange: "B:C",
			},
			reason: "adjacent to the last column",
		},
		{
			name: "data left of configured columns",
			cfg: config.TableConfig{
				Name:        "maintenance_shifted",
				SheetName:   "Maintenance",
				HeaderRows:  config.IntList{7},
				EndRow:      10,
				ColumnRange: "C:D",
			},
			reason: "adjacent to the first column",
		},
		{
			name: "notes row swept into the table",
			cfg: config.TableConfig{
				Name:        "maintenance_with_notes",
				SheetName:   "Maintenance",
				HeaderRows:  config.IntList{7},
				EndRow:      11,
				ColumnRange: "B:D",
			},
			reason: `"Notes:"`,
		},
		{
			name: "duplicate column names",
			cfg: config.TableConfig{
				Name:        "outage_rates",
				SheetName:   "Outages",
				HeaderRows:  config.IntList{7},
				EndRow:      8,
				ColumnRange: "B:D",
			},
			reason: "duplicate column names",
		},
		{
			name: "incomplete first column",
			cfg: config.TableConfig{
				Name:        "build_limits",
				SheetName:   "Build limits",
				HeaderRows:  config.IntList{7},
				EndRow:      9,
				ColumnRange: "B:C",
			},
			reason: "first column contains missing values",
		},
		{
			name: "empty last column",
			cfg: config.TableConfig{
				Name:        "build_limits_wide",
				SheetName:   "Build limits",
				HeaderRows:  config.IntList{7},
				EndRow:      9,
				ColumnRange: "B:D",
			},
			reason: "is empty",
		},
	}

	p := openTestParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.GetTableFromConfig(tt.cfg)
			var checkErr *ConfigCheckError
			if !errors.As(err, &checkErr) {
				t.Fatalf("expected ConfigCheckError, got %v", err)
			}
			if !strings.Contains(checkErr.Reason, tt.reason) {
				t.Errorf("Reason = %q, expected it to mention %q", checkErr.Reason, tt.reason)
			}
		})
	}
}

func TestConfigChecksTolerateStrayBacktick(t *testing.T) {
	p := openTestParser(t)
	// The good maintenance config has a backtick in the cell right of its
	// first body row; the adjacency check must not trip on it.
	if _, err := p.GetTable("maintenance_rates"); err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}
}

func TestConfigChecksExemptPlaceholderColumn(t *testing.T) {
	p := openTestParser(t)
	cfg := config.TableConfig{
		Name:        "capacity_limits",
		SheetName:   "Capacity",
		HeaderRows:  config.IntList{7},
		EndRow:      8,
		ColumnRange: "C:D",
	}
	// Column B holds data but its header marks it as a workbook-internal
	// placeholder, so the left adjacency check is waived.
	if _, err := p.GetTableFromConfig(cfg); err != nil {
		t.Fatalf("GetTableFromConfig failed: %v", err)
	}
}

func TestConfigChecksCanBeDisabled(t *testing.T) {
	checks := false
	p, err := Open(saveTestWorkbook(t), Options{ConfigDir: writeConfigDir(t), ConfigChecks: &checks})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	cfg := config.TableConfig{
		Name:        "maintenance_short",
		SheetName:   "Maintenance",
		HeaderRows:  config.IntList{7},
		EndRow:      9,
		ColumnRange: "B:D",
	}
	table, err := p.GetTableFromConfig(cfg)
	if err != nil {
		t.Fatalf("GetTableFromConfig failed with checks disabled: %v", err)
	}
	if table.NumRows() != 2 {
		t.Errorf("NumRows = %d, expected 2", table.NumRows())
	}
}
