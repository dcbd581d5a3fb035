// Package grid presents workbook sheets as addressable, read-only 2-D grids
// of typed cells with merge-span and strike-through metadata.
package grid

import (
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Workbook wraps an open excelize file and hands out immutable Sheet grids.
// Sheets are loaded on first access and cached; once loaded they are never
// mutated, so concurrent reads of loaded sheets are safe.
type Workbook struct {
	file   *excelize.File
	logger *zap.Logger

	mu     sync.Mutex
	sheets map[string]*Sheet
}

// Open opens the workbook at path. The caller must Close the returned
// Workbook when done.
func Open(path string, logger *zap.Logger) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return FromFile(f, logger), nil
}

// FromFile wraps an already-open excelize file. Ownership of the file passes
// to the Workbook.
func FromFile(f *excelize.File, logger *zap.Logger) *Workbook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workbook{
		file:   f,
		logger: logger,
		sheets: make(map[string]*Sheet),
	}
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames returns the workbook sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ResolveSheetName matches name against the workbook sheet names ignoring
// case. Configs are written against a specific workbook version and sheet
// name casing occasionally drifts between versions.
func (w *Workbook) ResolveSheetName(name string) (string, error) {
	var matches []string
	lower := strings.ToLower(name)
	for _, sheetName := range w.file.GetSheetList() {
		if strings.ToLower(sheetName) == lower {
			matches = append(matches, sheetName)
		}
	}
	switch len(matches) {
	case 0:
		return "", &SheetNotFoundError{SheetName: name}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousSheetError{SheetName: name}
	}
}

// Sheet returns the loaded grid for the named sheet, resolving the name
// case-insensitively. It fails with SheetNotFoundError when the sheet is
// absent.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	resolved, err := w.ResolveSheetName(name)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if sheet, ok := w.sheets[resolved]; ok {
		return sheet, nil
	}

	sheet, err := loadSheet(w.file, resolved)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("loaded sheet",
		zap.String("sheet", resolved),
		zap.Int("rows", sheet.MaxRow),
		zap.Int("cols", sheet.MaxCol))
	w.sheets[resolved] = sheet
	return sheet, nil
}
