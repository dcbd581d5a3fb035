package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

// reNumeric matches the canonical numeric lexical forms: an optional sign, a
// plain digit run or digit groups joined by thousands commas, and an
// optional decimal part.
var reNumeric = regexp.MustCompile(`^-?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?$`)

// coerceValue converts a textual value to a numeric one where its lexical
// form is unambiguous. Integers without a fractional part coerce to KindInt,
// other numbers to KindFloat, non-numeric text keeps its sanitised form, and
// blank or hyphen placeholder cells become the missing marker. Coercion is
// per cell; mixed types within a column are preserved.
func coerceValue(v models.Value) models.Value {
	if v.Kind != models.KindText {
		return v
	}
	text := sanitiseValueText(v.Text)
	if text == "" || text == "-" {
		return models.EmptyValue()
	}
	if n, ok := parseNumeric(text); ok {
		return n
	}
	return models.TextValue(text)
}

// parseNumeric parses text in canonical numeric form into a typed value.
func parseNumeric(s string) (models.Value, bool) {
	if !reNumeric.MatchString(s) {
		return models.Value{}, false
	}
	s = strings.ReplaceAll(s, ",", "")
	if !strings.Contains(s, ".") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return models.IntValue(i), true
		}
		// Out of int64 range; fall through to float.
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Value{}, false
	}
	return models.FloatValue(f), true
}
