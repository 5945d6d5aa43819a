package interfaces

import (
	"context"

	"cabletv_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_interface_mock.go -package=mock_interfaces

// ICustomerRepository abstracts DynamoDB persistence for Customer documents.
//
// The back-office core must be able to:
//   - create a customer once (manual entry or accepted import row)
//   - load a customer with its connections and status logs
//   - save the whole document in one write (status changes persist the
//     updated connection list and appended logs atomically)
//   - list the book for export and bulk management

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}
