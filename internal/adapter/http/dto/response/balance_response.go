package response

import (
	"cabletv_backoffice/internal/usecase"
)

type BalanceResponse struct {
	PreviousOutstanding string `json:"previous_outstanding"`
	CurrentOutstanding  string `json:"current_outstanding"`
}

func FromBalanceResult(r usecase.BalanceResult) BalanceResponse {
	return BalanceResponse{
		PreviousOutstanding: r.PreviousOutstanding.String(),
		CurrentOutstanding:  r.CurrentOutstanding.String(),
	}
}
