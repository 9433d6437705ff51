package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a single invoice line item.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceItems is stored as a JSONB column.
type InvoiceItems []InvoiceItem

// Value implements driver.Valuer.
func (it InvoiceItems) Value() (driver.Value, error) {
	if it == nil {
		return json.Marshal(InvoiceItems{})
	}
	return json.Marshal(it)
}

// Scan implements sql.Scanner.
func (it *InvoiceItems) Scan(src interface{}) error {
	return scanJSON(src, it)
}

// Attachment describes a file attached to a message.
type Attachment struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Attachments is stored as a JSONB column.
type Attachments []Attachment

// Value implements driver.Valuer.
func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(Attachments{})
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *Attachments) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// Metadata is an arbitrary key/value bag stored as a JSONB column.
type Metadata map[string]interface{}

// Value implements driver.Valuer.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(Metadata{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *Metadata) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}
