package request

// ChangeStatusRequest asks for a status change on one customer. SelectedVCs
// must name the target connections when the customer has more than one VC.
type ChangeStatusRequest struct {
	TargetStatus string       `json:"target_status" binding:"required"`
	SelectedVCs  []string     `json:"selected_vcs"`
	Reason       string       `json:"reason"`
	Actor        ActorRequest `json:"actor" binding:"required"`
}

// AssignVCRequest attaches an available inventory card to the customer.
type AssignVCRequest struct {
	VCNumber    string       `json:"vc_number" binding:"required"`
	MakePrimary bool         `json:"make_primary"`
	Actor       ActorRequest `json:"actor" binding:"required"`
}

// ReleaseVCRequest returns a card to inventory.
type ReleaseVCRequest struct {
	VCNumber string       `json:"vc_number" binding:"required"`
	Actor    ActorRequest `json:"actor" binding:"required"`
}
