package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"agencyhub/internal/domain"
	"agencyhub/internal/xlsxexport"
)

func TestWrite_HeaderAndRows(t *testing.T) {
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 1, 0)
	paid := issue.AddDate(0, 0, 20)

	rows := []xlsxexport.Row{
		{
			Invoice: &domain.Invoice{
				InvoiceNumber: "INV-0001",
				Description:   "Phase one",
				Status:        domain.InvoiceStatusPaid,
				Subtotal:      decimal.NewFromInt(1000),
				TaxRate:       decimal.NewFromInt(16),
				TaxAmount:     decimal.NewFromInt(160),
				Total:         decimal.NewFromInt(1160),
				IssueDate:     issue,
				DueDate:       due,
				PaymentDate:   &paid,
				PaymentMethod: "bank_transfer",
				CreatedAt:     issue,
			},
			ClientName:  "Acme Corp",
			ProjectName: "Website",
		},
		{
			Invoice: &domain.Invoice{
				InvoiceNumber: "INV-0002",
				Status:        domain.InvoiceStatusSent,
				Subtotal:      decimal.NewFromInt(500),
				Total:         decimal.NewFromInt(500),
				IssueDate:     issue,
				DueDate:       due,
				CreatedAt:     issue,
			},
			ClientName:  "Beta LLC",
			ProjectName: "Branding",
		},
	}

	var buf bytes.Buffer
	err := xlsxexport.Write(&buf, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, "Invoice Number", cells[0][0])
	assert.Equal(t, "Total", cells[0][8])

	assert.Equal(t, "INV-0001", cells[1][0])
	assert.Equal(t, "Acme Corp", cells[1][1])
	assert.Equal(t, "Website", cells[1][2])
	assert.Equal(t, "paid", cells[1][4])
	assert.Equal(t, "1160", cells[1][8])
	assert.Equal(t, "2026-03-21", cells[1][11])
	assert.Equal(t, "bank_transfer", cells[1][12])

	assert.Equal(t, "INV-0002", cells[2][0])
	assert.Equal(t, "sent", cells[2][4])
}

func TestWrite_NoRows(t *testing.T) {
	var buf bytes.Buffer
	err := xlsxexport.Write(&buf, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Invoices")
	require.NoError(t, err)
	assert.Len(t, cells, 1)
}
