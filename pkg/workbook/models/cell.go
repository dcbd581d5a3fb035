package models

// MergeAnchor is the coordinate of the top-left cell of a merge span.
type MergeAnchor struct {
	// Row is the anchor row (1-based).
	Row int `json:"row"`
	// Col is the anchor column (1-based).
	Col int `json:"col"`
}

// Cell is a single sheet cell as seen by the extraction engine. Cells are
// immutable once read from the workbook.
type Cell struct {
	// Value is the raw cell value. Non-anchor members of a merge span hold
	// the missing marker; the value lives only at the anchor.
	Value Value `json:"value"`
	// StruckThrough reports whether the cell text carries strike-through
	// formatting, the workbook's signal for a retired entry.
	StruckThrough bool `json:"struck_through,omitempty"`
	// Merge points at the top-left cell of the merge span this cell belongs
	// to, or is nil when the cell is not merged. A cell belongs to at most
	// one span; the anchor cell points at itself.
	Merge *MergeAnchor `json:"merge,omitempty"`
}
