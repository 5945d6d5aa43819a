package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus is the service status of a customer account or of a single
// connection. "demo" is a trial account that still receives service.

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusDemo     CustomerStatus = "demo"
)

// ValidCustomerStatus reports whether s is one of the known statuses.
func ValidCustomerStatus(s CustomerStatus) bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusDemo:
		return true
	}
	return false
}

// AggregateStatus is the customer-level display status derived from the
// individual connection statuses. It is never stored; every surface derives it
// through Customer.AggregateStatus so "mixed" cannot be collapsed away.

type AggregateStatus string

const (
	AggregateStatusActive   AggregateStatus = "active"
	AggregateStatusInactive AggregateStatus = "inactive"
	AggregateStatusDemo     AggregateStatus = "demo"
	AggregateStatusMixed    AggregateStatus = "mixed"
)

// Customer is the account document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - connections and status logs are nested lists inside the document, so a
//     status change persists the whole customer in one PutItem.
//
// Monetary representation:
//   - PackageAmount and the outstanding fields are signed decimals; a negative
//     outstanding means the customer is in credit. Only the balance calculator
//     writes the outstanding fields.
//
// Legacy note: customers migrated from the old book may have no explicit
// connections and carry their single VC on the customer-level VCNumber field.

type Customer struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	PhoneNumber string         `json:"phone_number"`
	Email       string         `json:"email,omitempty"`
	Address     string         `json:"address"`
	Area        string         `json:"area"`
	VCNumber    string         `json:"vc_number"`
	PackageName string         `json:"package_name"`
	Status      CustomerStatus `json:"status"`
	Disabled    bool           `json:"disabled"`
	BillDueDate int            `json:"bill_due_date"`

	PackageAmount       decimal.Decimal `json:"package_amount"`
	PreviousOutstanding decimal.Decimal `json:"previous_outstanding"`
	CurrentOutstanding  decimal.Decimal `json:"current_outstanding"`

	Connections []Connection `json:"connections"`
	StatusLogs  []StatusLog  `json:"status_logs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive derives the legacy boolean from the status enum. Demo customers
// receive service, so they count as active. The boolean is never stored.
func (c Customer) IsActive() bool {
	return c.Status == CustomerStatusActive || c.Status == CustomerStatusDemo
}

// HasMultipleVCs reports whether a status change must name an explicit subset
// of VCs. A single connection that differs from the legacy customer-level VC
// also counts: the legacy VC and the connection are distinct set-top boxes.
func (c Customer) HasMultipleVCs() bool {
	if len(c.Connections) > 1 {
		return true
	}
	return len(c.Connections) == 1 && c.Connections[0].VCNumber != c.VCNumber
}

// PrimaryConnection returns the primary connection, or nil for legacy
// customers without explicit connections.
func (c Customer) PrimaryConnection() *Connection {
	for i := range c.Connections {
		if c.Connections[i].IsPrimary {
			return &c.Connections[i]
		}
	}
	return nil
}

// Connection returns the connection holding vcNumber, or nil.
func (c *Customer) Connection(vcNumber string) *Connection {
	for i := range c.Connections {
		if c.Connections[i].VCNumber == vcNumber {
			return &c.Connections[i]
		}
	}
	return nil
}

// AggregateStatus derives the customer-level display status. All connections
// sharing one status yield that status; anything else is "mixed". Legacy
// customers without explicit connections fall back to the account status.
func (c Customer) AggregateStatus() AggregateStatus {
	if len(c.Connections) == 0 {
		return AggregateStatus(c.Status)
	}
	first := c.Connections[0].Status
	for _, conn := range c.Connections[1:] {
		if conn.Status != first {
			return AggregateStatusMixed
		}
	}
	return AggregateStatus(first)
}
