package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/config"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/grid"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/output"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/parser"
)

// changeLogSheet is the sheet recording workbook revisions; the version
// number is the last value in its second column.
const changeLogSheet = "Change Log"

// Parser ties a loaded workbook to the table configs for its version and
// extracts tables on request.
type Parser struct {
	path     string
	workbook *grid.Workbook
	version  string
	configs  map[string]config.TableConfig
	opts     Options
	logger   *zap.Logger
}

// Open loads the workbook at path together with the table configs for its
// version. When opts.ConfigDir is set those configs are used directly;
// otherwise the workbook version is detected from the Change Log sheet and
// the matching subdirectory of opts.VersionedConfigDir is loaded. The caller
// must Close the Parser when done.
func Open(path string, opts Options) (*Parser, error) {
	logger := opts.logger()
	wb, err := grid.Open(path, logger)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		path:     path,
		workbook: wb,
		opts:     opts,
		logger:   logger,
	}

	configDir := opts.ConfigDir
	if configDir == "" {
		version, err := p.detectVersion()
		if err != nil {
			wb.Close()
			return nil, err
		}
		p.version = version
		configDir = filepath.Join(opts.versionedConfigDir(), version)
		if _, err := os.Stat(configDir); err != nil {
			wb.Close()
			return nil, &UnsupportedVersionError{Version: version}
		}
	}

	configs, err := config.LoadDir(configDir)
	if err != nil {
		wb.Close()
		return nil, err
	}
	// Resolve configured sheet names against the workbook up front so a
	// stale config fails at open rather than on first extraction.
	for name, cfg := range configs {
		resolved, err := wb.ResolveSheetName(cfg.SheetName)
		if err != nil {
			wb.Close()
			return nil, err
		}
		cfg.SheetName = resolved
		configs[name] = cfg
	}
	p.configs = configs
	logger.Info("opened workbook",
		zap.String("path", path),
		zap.String("version", p.version),
		zap.Int("tables", len(configs)))
	return p, nil
}

// Close releases the underlying workbook file.
func (p *Parser) Close() error {
	return p.workbook.Close()
}

// Version returns the workbook version detected from the Change Log sheet,
// or the empty string when an explicit config directory was used.
func (p *Parser) Version() string {
	return p.version
}

// detectVersion reads the workbook version: the last non-empty value in
// column B of the Change Log sheet.
func (p *Parser) detectVersion() (string, error) {
	sheet, err := p.workbook.Sheet(changeLogSheet)
	if err != nil {
		return "", fmt.Errorf("cannot determine workbook version: %w", err)
	}
	last := models.EmptyValue()
	for row := 1; row <= sheet.MaxRow; row++ {
		if v := sheet.Cell(row, 2).Value; !v.IsEmpty() {
			last = v
		}
	}
	switch last.Kind {
	case models.KindInt:
		return fmt.Sprintf("%d.0", last.Int), nil
	case models.KindFloat:
		if last.Float == float64(int64(last.Float)) {
			return fmt.Sprintf("%.1f", last.Float), nil
		}
		return strconv.FormatFloat(last.Float, 'f', -1, 64), nil
	case models.KindText:
		return strings.TrimSpace(last.Text), nil
	default:
		return "", fmt.Errorf("the %s sheet has no version entries in column B", changeLogSheet)
	}
}

// TableNames returns the configured table names grouped by sheet name, with
// both sheets and table names sorted.
func (p *Parser) TableNames() map[string][]string {
	bySheet := make(map[string][]string)
	for name, cfg := range p.configs {
		bySheet[cfg.SheetName] = append(bySheet[cfg.SheetName], name)
	}
	for _, names := range bySheet {
		sort.Strings(names)
	}
	return bySheet
}

// GetTable extracts the named table using the config loaded for this
// workbook version.
func (p *Parser) GetTable(name string) (*models.Table, error) {
	cfg, ok := p.configs[name]
	if !ok {
		return nil, &UnknownTableError{Name: name, Closest: p.closestTableName(name)}
	}
	return p.GetTableFromConfig(cfg)
}

// GetTableFromConfig extracts a table using a caller-supplied config. The
// config is validated, its sheet name resolved case-insensitively, and the
// extracted data run through the config sanity checks unless disabled.
func (p *Parser) GetTableFromConfig(cfg config.TableConfig) (*models.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resolved, err := p.workbook.ResolveSheetName(cfg.SheetName)
	if err != nil {
		return nil, err
	}
	cfg.SheetName = resolved
	sheet, err := p.workbook.Sheet(resolved)
	if err != nil {
		return nil, err
	}
	table, err := parser.Extract(sheet, &cfg)
	if err != nil {
		return nil, err
	}
	if p.opts.ShouldCheckConfig() {
		if err := checkTable(sheet, &cfg, table); err != nil {
			return nil, err
		}
	}
	p.logger.Debug("extracted table",
		zap.String("table", cfg.Name),
		zap.String("sheet", cfg.SheetName),
		zap.Int("rows", table.NumRows()),
		zap.Int("cols", table.NumCols()))
	return table, nil
}

// SaveTables extracts tables and writes one CSV file per table into
// directory. A nil or empty names slice saves every configured table.
// Per-table failures do not abort the run; they are collected and returned
// together after all tables have been attempted.
func (p *Parser) SaveTables(directory string, names []string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return err
	}
	if len(names) == 0 {
		for name := range p.configs {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	var errs []error
	for _, name := range names {
		table, err := p.GetTable(name)
		if err != nil {
			p.logger.Warn("table extraction failed", zap.String("table", name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		path := filepath.Join(directory, name+".csv")
		if err := writeTableFile(path, table); err != nil {
			errs = append(errs, err)
			continue
		}
		p.logger.Info("saved table", zap.String("table", name), zap.String("path", path))
	}
	return errors.Join(errs...)
}

func writeTableFile(path string, table *models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// closestTableName suggests the configured name most similar to the
// requested one: a case-insensitive substring match, longest name first.
func (p *Parser) closestTableName(name string) string {
	lower := strings.ToLower(name)
	best := ""
	for candidate := range p.configs {
		cl := strings.ToLower(candidate)
		if strings.Contains(cl, lower) || strings.Contains(lower, cl) {
			if len(candidate) > len(best) {
				best = candidate
			}
		}
	}
	if best != "" {
		return best
	}
	// Fall back to the longest shared prefix.
	bestLen := 0
	for candidate := range p.configs {
		n := sharedPrefixLen(strings.ToLower(candidate), lower)
		if n > bestLen || (n == bestLen && (best == "" || candidate < best)) {
			best, bestLen = candidate, n
		}
	}
	return best
}

func sharedPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
