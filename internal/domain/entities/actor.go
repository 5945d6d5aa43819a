package entities

// ActorRole separates admins, who change status directly, from employees,
// whose changes go through the action-request workflow.

type ActorRole string

const (
	RoleAdmin    ActorRole = "admin"
	RoleEmployee ActorRole = "employee"
)

// Actor is whoever triggered an operation. The core only cares about the
// role; authentication is the caller's problem.
type Actor struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role ActorRole `json:"role"`
}

// CanChangeStatus reports whether the actor may apply a status change
// directly instead of raising an ActionRequest.
func (a Actor) CanChangeStatus() bool {
	return a.Role == RoleAdmin
}
