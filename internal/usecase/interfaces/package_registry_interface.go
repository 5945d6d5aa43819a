package interfaces

import (
	"context"

	"cabletv_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=package_registry_interface.go -destination=mocks/package_registry_interface_mock.go -package=mock_interfaces

// IPackageRegistry exposes the channel packages maintained by the package
// management screens. Only active packages are assignable to customers.
type IPackageRegistry interface {
	ListActive(ctx context.Context) ([]entities.Package, error)
}
