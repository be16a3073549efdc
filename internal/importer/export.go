package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Contacts"

// ExportHeader uses the same vocabulary the importer recognises, so exports re-import cleanly
var ExportHeader = []string{"Company", "Email", "Name", "Domain", "Industry", "Employees", "Comment", "Groups"}

// ExportRow is one contact with the names of its groups
type ExportRow struct {
	Contact domain.Contact
	Groups  []string
}

// WriteXLSX writes contacts as a single-sheet workbook
func WriteXLSX(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, "A1", "H1", bold)
	}

	for i, r := range rows {
		c := r.Contact
		var employees interface{}
		if c.EmployeeCount != nil {
			employees = *c.EmployeeCount
		}
		values := []interface{}{
			c.Company, c.ContactEmail, c.ContactName, c.Domain, c.Industry,
			employees, c.Comment, strings.Join(r.Groups, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "H", 24)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
