// Package main provides the CLI entry point for the workbook parser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook"
	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/output"
)

var (
	listFormat string
	outputDir  string
	tableNames []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "isp-workbook-parser",
		Short: "Extract data tables from ISP inputs and assumptions workbooks",
		Long: `isp-workbook-parser extracts clean, rectangular data tables from AEMO
ISP inputs and assumptions workbooks, driven by per-version table configs.

Each table's location (header rows, end row, column range, skip rows,
merged-row columns) is described by a YAML config; the workbook version is
read from the Change Log sheet and selects the matching config set.`,
	}

	rootCmd.PersistentFlags().String("config-dir", "", "Directory of table config YAML files (default: packaged configs for the workbook version)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-checks", false, "Skip config sanity checks on extracted tables")
	_ = viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("no_checks", rootCmd.PersistentFlags().Lookup("no-checks"))
	viper.SetEnvPrefix("ISP")
	viper.AutomaticEnv()

	tablesCmd := &cobra.Command{
		Use:   "tables [workbook.xlsx]",
		Short: "List configured table names grouped by sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runTables,
	}
	tablesCmd.Flags().StringVar(&listFormat, "format", "text", "Listing format: text, json, yaml")

	extractCmd := &cobra.Command{
		Use:   "extract [workbook.xlsx]",
		Short: "Extract configured tables and write one CSV file per table",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputDir, "output", "o", "tables", "Output directory for CSV files")
	extractCmd.Flags().StringSliceVarP(&tableNames, "table", "t", nil, "Table name to extract (repeatable; default: all configured tables)")

	rootCmd.AddCommand(tablesCmd, extractCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openParser(path string) (*workbook.Parser, func(), error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", path)
	}

	level := zapcore.InfoLevel
	if viper.GetBool("debug") {
		level = zapcore.DebugLevel
	}
	logger, sync, err := workbook.SetupLogger("isp-workbook-parser", level, viper.GetBool("debug"))
	if err != nil {
		return nil, nil, err
	}

	checks := !viper.GetBool("no_checks")
	opts := workbook.Options{
		ConfigDir:    viper.GetString("config_dir"),
		ConfigChecks: &checks,
		Logger:       logger,
	}
	parser, err := workbook.Open(path, opts)
	if err != nil {
		sync()
		return nil, nil, err
	}
	cleanup := func() {
		parser.Close()
		sync()
	}
	return parser, cleanup, nil
}

func runTables(cmd *cobra.Command, args []string) error {
	parser, cleanup, err := openParser(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	return output.WriteTableNames(os.Stdout, parser.TableNames(), output.Format(listFormat))
}

func runExtract(cmd *cobra.Command, args []string) error {
	parser, cleanup, err := openParser(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if err := parser.SaveTables(outputDir, tableNames); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	return nil
}
