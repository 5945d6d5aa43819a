package request

import (
	"errors"
	"strings"

	"cabletv_backoffice/internal/domain/entities"
)

var ErrInvalidActor = errors.New("invalid actor")

// ActorRequest identifies who triggered the operation. Authentication is
// handled upstream; the core only needs identity and role.
type ActorRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
	Role string `json:"role" binding:"required"`
}

func (r ActorRequest) ToActor() (entities.Actor, error) {
	role := entities.ActorRole(strings.TrimSpace(r.Role))
	switch role {
	case entities.RoleAdmin, entities.RoleEmployee:
	default:
		return entities.Actor{}, ErrInvalidActor
	}
	return entities.Actor{
		ID:   strings.TrimSpace(r.ID),
		Name: strings.TrimSpace(r.Name),
		Role: role,
	}, nil
}
