package entities

import "github.com/shopspring/decimal"

// Registry entities are owned by the area/package/inventory management
// screens. The core reads them for validation; the only field it writes is
// the inventory status, flipped on VC assignment and release.

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Package struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"is_active"`
}

// VCStatus is the inventory state of a viewing card.

type VCStatus string

const (
	VCStatusAvailable VCStatus = "available"
	VCStatusActive    VCStatus = "active"
)

// VCInventoryItem is one viewing card in stock. CustomerID is set while the
// card is assigned.
type VCInventoryItem struct {
	VCNumber   string   `json:"vc_number"`
	Status     VCStatus `json:"status"`
	CustomerID string   `json:"customer_id,omitempty"`
}
