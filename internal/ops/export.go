package ops

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/emp/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportFormat names an export encoding.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportFormats lists the supported export formats in display order.
var ExportFormats = []ExportFormat{ExportYAML, ExportJSON, ExportCSV, ExportXLSX}

// exportSheet is the worksheet name used for xlsx exports.
const exportSheet = "Employees"

var exportHeader = []string{"id", "name", "position", "salary", "skills"}

// ParseExportFormat resolves a user-supplied format name (case-insensitive).
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ExportFormats {
		if f == known {
			return f, nil
		}
	}
	return "", &InvalidDataError{
		Field:   "format",
		Message: fmt.Sprintf("%q is not one of yaml, json, csv, xlsx", s),
	}
}

// Export writes the whole roster to w in the given format.
// In csv and xlsx, skills are joined with ", " into a single cell.
func Export(b Backend, format ExportFormat, w io.Writer) error {
	r, err := b.Load()
	if err != nil {
		return err
	}

	switch format {
	case ExportYAML:
		return exportDocument(r, model.FormatYAML, w)
	case ExportJSON:
		return exportDocument(r, model.FormatJSON, w)
	case ExportCSV:
		return exportCSV(r, w)
	case ExportXLSX:
		return exportXLSX(r, w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func exportDocument(r *model.Roster, format model.Format, w io.Writer) error {
	data, err := model.Encode(r, format)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func exportRow(e *model.Employee) []string {
	return []string{
		strconv.Itoa(e.ID),
		e.Name,
		e.Position,
		strconv.FormatFloat(e.Salary, 'f', -1, 64),
		strings.Join(e.Skills, ", "),
	}
}

func exportCSV(r *model.Roster, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := range r.Employees {
		if err := cw.Write(exportRow(&r.Employees[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportXLSX(r *model.Roster, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range r.Employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		// Numbers stay numeric so spreadsheets can sum salaries.
		row := []interface{}{e.ID, e.Name, e.Position, e.Salary, strings.Join(e.Skills, ", ")}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write employee %d: %w", e.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
