package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bpdigital/contract-repository/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the expiration report workbook: a summary sheet with the
// report parameters plus one detail sheet listing the expiring contracts.
func (g *Generator) Generate(report model.ExpirationReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	detailSheet := "Expiring Contracts"
	file.NewSheet(detailSheet)
	if err := g.writeDetail(file, detailSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ExpirationReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	needReminder := 0
	for _, row := range report.Rows {
		if row.NeedsReminder {
			needReminder++
		}
	}

	set("A1", "Report")
	set("B1", "Contract expiration")
	set("A2", "Generated at")
	set("B2", report.GeneratedAt.Format("2006-01-02 15:04"))
	set("A3", "Threshold, days")
	set("B3", report.ThresholdDays)
	set("A4", "Contracts expiring")
	set("B4", len(report.Rows))
	set("A5", "Needing reminder")
	set("B5", needReminder)

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, report model.ExpirationReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Contract number",
		"Title",
		"Type",
		"Customer",
		"Department",
		"Status",
		"End date",
		"Days left",
		"Reminder due",
		"Value",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, row := range report.Rows {
		values := []interface{}{
			row.ContractNumber,
			row.Title,
			row.TypeName,
			row.CustomerName,
			row.InternalDepartment,
			row.Status.DisplayName(),
			row.EndDate.Format("2006-01-02"),
			row.DaysUntilExpiration,
			yesNo(row.NeedsReminder),
			row.FormattedValue,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 22)
	_ = file.SetColWidth(sheet, "B", "B", 36)
	_ = file.SetColWidth(sheet, "C", "E", 24)
	_ = file.SetColWidth(sheet, "F", "I", 14)
	_ = file.SetColWidth(sheet, "J", "J", 20)

	if len(report.Rows) > 0 {
		ref := fmt.Sprintf("A1:J%d", len(report.Rows)+1)
		_ = file.AutoFilter(sheet, ref, nil)
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
