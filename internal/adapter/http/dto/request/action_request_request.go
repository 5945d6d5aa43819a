package request

// ResolveActionRequest approves or denies a pending request. Reason is only
// meaningful for denials.
type ResolveActionRequest struct {
	Reason string       `json:"reason"`
	Actor  ActorRequest `json:"actor" binding:"required"`
}
