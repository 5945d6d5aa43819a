package interfaces

import (
	"context"
	"errors"

	"cabletv_backoffice/internal/domain/entities"
)

// ErrVCConflict is returned by Assign when the card is not available at
// write time (lost race or stale caller view).
var ErrVCConflict = errors.New("vc is not available for assignment")

//go:generate mockgen -source=vc_inventory_interface.go -destination=mocks/vc_inventory_interface_mock.go -package=mock_interfaces

// IVCInventory abstracts the viewing-card stock.
//
// Assign must be conditional on the card being available so a VC number can
// never be attached to two customers, whatever the callers race on. Lookup
// returns a zero-value item when the card does not exist.

type IVCInventory interface {
	Lookup(ctx context.Context, vcNumber string) (entities.VCInventoryItem, error)
	List(ctx context.Context) ([]entities.VCInventoryItem, error)
	Assign(ctx context.Context, vcNumber, customerID string) error
	Release(ctx context.Context, vcNumber string) error
}
