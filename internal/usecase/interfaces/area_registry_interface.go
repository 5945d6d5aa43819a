package interfaces

import "context"

//go:generate mockgen -source=area_registry_interface.go -destination=mocks/area_registry_interface_mock.go -package=mock_interfaces

// IAreaRegistry exposes the area names maintained by the area management
// screens. Read-only from the core's perspective.
type IAreaRegistry interface {
	ListNames(ctx context.Context) ([]string, error)
}
