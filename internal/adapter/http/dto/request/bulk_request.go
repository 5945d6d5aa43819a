package request

// BulkAreaRequest moves a set of customers to a new area.
type BulkAreaRequest struct {
	CustomerIDs []string     `json:"customer_ids" binding:"required"`
	Area        string       `json:"area" binding:"required"`
	Actor       ActorRequest `json:"actor" binding:"required"`
}

// BulkPackageRequest switches a set of customers to a different package.
type BulkPackageRequest struct {
	CustomerIDs []string     `json:"customer_ids" binding:"required"`
	PackageName string       `json:"package_name" binding:"required"`
	Actor       ActorRequest `json:"actor" binding:"required"`
}
