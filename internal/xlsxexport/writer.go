package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"agencyhub/internal/domain"
)

const sheetName = "Invoices"

// columns defines the header row of the invoice export sheet.
var columns = []interface{}{
	"Invoice Number",
	"Client",
	"Project",
	"Description",
	"Status",
	"Subtotal",
	"Tax Rate",
	"Tax Amount",
	"Total",
	"Issue Date",
	"Due Date",
	"Payment Date",
	"Payment Method",
	"Created At",
}

// Row pairs an invoice with the display names its foreign keys resolve to.
type Row struct {
	Invoice     *domain.Invoice
	ClientName  string
	ProjectName string
}

// Write renders the rows as an XLSX workbook and writes it to w.
func Write(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return fmt.Errorf("xlsxexport: writing header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsxexport: computing cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, invoiceToRow(row)); err != nil {
			return fmt.Errorf("xlsxexport: writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: writing workbook: %w", err)
	}
	return nil
}

func invoiceToRow(row Row) *[]interface{} {
	inv := row.Invoice
	cells := []interface{}{
		inv.InvoiceNumber,
		row.ClientName,
		row.ProjectName,
		inv.Description,
		string(inv.Status),
		inv.Subtotal.InexactFloat64(),
		inv.TaxRate.InexactFloat64(),
		inv.TaxAmount.InexactFloat64(),
		inv.Total.InexactFloat64(),
		inv.IssueDate.Format("2006-01-02"),
		inv.DueDate.Format("2006-01-02"),
		formatDate(inv.PaymentDate),
		inv.PaymentMethod,
		inv.CreatedAt.Format(time.RFC3339),
	}
	return &cells
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
