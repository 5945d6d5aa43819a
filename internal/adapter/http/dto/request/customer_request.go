package request

import (
	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase"
)

// CreateCustomerRequest is a manual customer entry from the back-office
// form. It is validated server-side against the same registries as a CSV
// import row.
type CreateCustomerRequest struct {
	Name        string       `json:"name" binding:"required"`
	PhoneNumber string       `json:"phone_number" binding:"required"`
	Email       string       `json:"email"`
	Address     string       `json:"address"`
	Area        string       `json:"area" binding:"required"`
	VCNumber    string       `json:"vc_number" binding:"required"`
	PackageName string       `json:"package_name" binding:"required"`
	Status      string       `json:"status"`
	BillDueDate int          `json:"bill_due_date"`
	Actor       ActorRequest `json:"actor" binding:"required"`
}

func (r CreateCustomerRequest) ToCommand() usecase.CreateCustomerCommand {
	return usecase.CreateCustomerCommand{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Address:     r.Address,
		Area:        r.Area,
		VCNumber:    r.VCNumber,
		PackageName: r.PackageName,
		Status:      entities.CustomerStatus(r.Status),
		BillDueDate: r.BillDueDate,
	}
}

// DisableCustomerRequest soft-disables an account.
type DisableCustomerRequest struct {
	Actor ActorRequest `json:"actor" binding:"required"`
}
