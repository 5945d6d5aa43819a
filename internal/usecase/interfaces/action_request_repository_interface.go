package interfaces

import (
	"context"

	"cabletv_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=action_request_repository_interface.go -destination=mocks/action_request_repository_interface_mock.go -package=mock_interfaces

// IActionRequestRepository abstracts DynamoDB persistence for ActionRequest.
//
// Resolve must only succeed while the stored request is still pending; a
// request that was already resolved comes back as a zero-value entity so the
// usecase can map it to ErrAlreadyResolved.

type IActionRequestRepository interface {
	Create(ctx context.Context, r entities.ActionRequest) (entities.ActionRequest, error)
	GetByID(ctx context.Context, id string) (entities.ActionRequest, error)
	ListPending(ctx context.Context) ([]entities.ActionRequest, error)
	Resolve(ctx context.Context, r entities.ActionRequest) (entities.ActionRequest, error)
}
