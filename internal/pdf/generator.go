package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bpdigital/contract-repository/internal/lifecycle"
	"github.com/bpdigital/contract-repository/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a one-page contract summary. Derived fields are
// evaluated against the passed instant so the document matches what the API
// returned at generation time.
func (g *Generator) Generate(contract model.Contract, now time.Time) ([]byte, error) {
	snap := lifecycle.SnapshotOf(&contract)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Contract Summary", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract %s: %s", contract.ContractNumber, contract.Title), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", now.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	typeName := ""
	if contract.ContractType != nil {
		typeName = contract.ContractType.FullDisplayName()
	}

	g.section(pdf, "General")
	g.fields(pdf, [][2]string{
		{"Status", contract.Status.DisplayName()},
		{"Type", typeName},
		{"Department", contract.InternalDepartment},
		{"External party", contract.ExternalParty},
		{"Business owner", safeValue(contract.BusinessOwner)},
		{"Source system", safeValue(contract.SourceSystem)},
	})

	g.section(pdf, "Customer")
	g.fields(pdf, [][2]string{
		{"Customer", fmt.Sprintf("%s (%s)", contract.CustomerName, contract.CustomerID)},
		{"T24 reference", safeValue(contract.T24CustomerID)},
		{"Relationship manager", safeValue(contract.RelationshipManager)},
		{"Primary contact", safeValue(contract.PrimaryContact)},
	})

	g.section(pdf, "Term")
	renewalDate := "N/A"
	if contract.RenewalDate != nil {
		renewalDate = contract.RenewalDate.Format("2006-01-02")
	}
	g.fields(pdf, [][2]string{
		{"Start date", contract.StartDate.Format("2006-01-02")},
		{"End date", contract.EndDate.Format("2006-01-02")},
		{"Renewal date", renewalDate},
		{"Duration, days", fmt.Sprintf("%d", lifecycle.DurationDays(snap))},
		{"Days until expiration", fmt.Sprintf("%d", lifecycle.DaysUntilExpiration(snap, now))},
		{"Auto renewal", yesNo(contract.AutoRenewal)},
		{"Renewal reminder due", yesNo(lifecycle.NeedsRenewalReminder(snap, now))},
	})

	g.section(pdf, "Financials")
	g.fields(pdf, [][2]string{
		{"Value", lifecycle.FormattedValue(snap)},
		{"Payment terms", safeValue(contract.PaymentTerms)},
		{"Risk level", safeValue(string(contract.RiskLevel))},
	})

	if contract.ComplianceNotes != "" {
		g.section(pdf, "Compliance notes")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, contract.ComplianceNotes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
}

func (g *Generator) fields(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, row := range rows {
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(55, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 6, row[1], "", "L", false)
	}
}

func safeValue(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
