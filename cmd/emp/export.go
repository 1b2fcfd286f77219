package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster",
	Long: `Write the whole roster in another format.

Formats:
  yaml   the flat-file document format
  json   the JSON document format
  csv    one row per employee with a header row
  xlsx   an Excel workbook with an "Employees" sheet

Output goes to stdout unless --out names a file. xlsx output is binary and
requires --out when stdout is a terminal.

Examples:
  emp export --format=csv > roster.csv
  emp export --format=xlsx --out=roster.xlsx`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(ops.ExportYAML), "yaml, json, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(ops.ExportFormats))
		for i, f := range ops.ExportFormats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := ops.ParseExportFormat(exportFormat)
	if err != nil {
		return err
	}
	if format == ops.ExportXLSX && exportOut == "" && cli.IsTerminal(os.Stdout) {
		return &cli.ValidationError{Field: "out", Message: "xlsx output needs --out when writing to a terminal"}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Buffer so a failed export never leaves a truncated output file.
	var buf bytes.Buffer
	if err := ops.Export(s.backend, format, &buf); err != nil {
		return err
	}

	if exportOut == "" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	if err := os.WriteFile(exportOut, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	s.log.Debug().Str("out", exportOut).Str("format", string(format)).Msg("roster exported")
	fmt.Printf("Exported roster to %s\n", exportOut)
	return nil
}
