package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceStatusTotal is one row of the per-status invoice summary.
type InvoiceStatusTotal struct {
	Status InvoiceStatus   `db:"status" json:"status"`
	Count  int             `db:"count" json:"count"`
	Total  decimal.Decimal `db:"total" json:"total"`
}

// InvoiceTotals holds the derived financial fields of an invoice.
type InvoiceTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeInvoiceTotals derives subtotal, tax amount, and total from line items
// and a percentage tax rate. Amounts are rounded to 2 decimal places.
// Derived fields are always recomputed from this function on save; stored
// values are never trusted from input.
func ComputeInvoiceTotals(items InvoiceItems, taxRate decimal.Decimal) InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	subtotal = subtotal.Round(2)
	taxAmount := subtotal.Mul(taxRate).Div(hundred).Round(2)
	return InvoiceTotals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// DefaultInvoiceItems returns the single generated line item used when an
// invoice is created without explicit items.
func DefaultInvoiceItems(description string, amount decimal.Decimal) InvoiceItems {
	if description == "" {
		description = "Professional services"
	}
	return InvoiceItems{{
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		Rate:        amount,
		Amount:      amount,
	}}
}

// FormatInvoiceNumber builds the human-readable invoice number from the
// invoice count at save time. The count-then-insert sequence is not
// transactionally safe: concurrent creates can observe the same count and
// produce duplicate numbers.
func FormatInvoiceNumber(count int) string {
	return fmt.Sprintf("INV-%04d", count+1)
}
