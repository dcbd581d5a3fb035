package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Format selects a serialization for table listings.
type Format string

const (
	// FormatText is an indented plain-text listing.
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is two-space-indented YAML.
	FormatYAML Format = "yaml"
)

// WriteTableNames writes the configured table names grouped by sheet in the
// requested format. Sheets and table names are emitted in sorted order.
func WriteTableNames(w io.Writer, bySheet map[string][]string, format Format) error {
	switch format {
	case FormatText:
		sheets := make([]string, 0, len(bySheet))
		for sheet := range bySheet {
			sheets = append(sheets, sheet)
		}
		sort.Strings(sheets)
		for _, sheet := range sheets {
			if _, err := fmt.Fprintf(w, "%s:\n", sheet); err != nil {
				return err
			}
			for _, name := range bySheet[sheet] {
				if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
					return err
				}
			}
		}
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(bySheet, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(bySheet); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported listing format: %s", format)
	}
}
