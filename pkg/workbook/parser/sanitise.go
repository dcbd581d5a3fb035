package parser

import (
	"regexp"
	"strings"
)

// The workbook decorates values and headers with footnote digits, asterisks
// and free-text notes. These rules strip the decoration so that values which
// are logically numeric survive numeric coercion.
var (
	reDoubleSpace = regexp.MustCompile(`\s{2,}`)
	// A single trailing digit is a footnote marker unless it follows
	// whitespace, another digit, a capital letter (unit or DUID suffixes), a
	// decimal point (e.g. "Snowy 2.0"), or one of _-#^.
	reTrailingFootnote = regexp.MustCompile(`([^\sA-Z\d._\-#^])\d$`)
	reTrailingStars    = regexp.MustCompile(`\*+$`)
	// A numeric value trailed by a parenthesised note, e.g. "120 (see note)".
	reParenNote = regexp.MustCompile(`^([0-9.]+)\s+\(.*\)$`)
	// A numeric value trailed by a hyphenated note, e.g. "120 - estimate".
	// The character after the hyphen must not be a digit so financial-year
	// labels like "2024-25" pass through untouched.
	reHyphenNote = regexp.MustCompile(`^([0-9.]+)\s*-\s*[^0-9].*$`)
	// A lone hyphen followed by a parenthesised note stands for no value.
	reHyphenParenNote = regexp.MustCompile(`^-\s*\(.*$`)
)

// trimBlank strips leading and trailing whitespace including the
// non-breaking spaces the workbook uses as spacers.
func trimBlank(s string) string {
	return strings.Trim(s, " \t ")
}

// collapseWhitespace replaces newlines with spaces and folds repeated
// whitespace into a single space.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return reDoubleSpace.ReplaceAllString(s, " ")
}

// sanitiseHeaderText normalizes one header cell's text: newlines and
// repeated whitespace collapse to single spaces, surrounding blanks are
// trimmed, and a trailing footnote digit is removed.
func sanitiseHeaderText(s string) string {
	s = collapseWhitespace(s)
	s = trimBlank(s)
	s = reTrailingFootnote.ReplaceAllString(s, "$1")
	return s
}

// sanitiseValueText normalizes one body cell's text before numeric coercion:
// whitespace is collapsed and trimmed, trailing asterisks and footnote
// digits are removed, and free-text notes after a numeric value are dropped.
func sanitiseValueText(s string) string {
	s = collapseWhitespace(s)
	s = trimBlank(s)
	s = reTrailingStars.ReplaceAllString(s, "")
	s = trimBlank(s)
	s = reParenNote.ReplaceAllString(s, "$1")
	s = reHyphenNote.ReplaceAllString(s, "$1")
	s = reHyphenParenNote.ReplaceAllString(s, "")
	s = reTrailingFootnote.ReplaceAllString(s, "$1")
	return s
}
