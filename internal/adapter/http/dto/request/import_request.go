package request

// ImportValidateRequest carries the raw CSV text pasted or uploaded on the
// bulk import screen.
type ImportValidateRequest struct {
	CSVContent string `json:"csv_content" binding:"required"`
}

// ImportCommitRequest commits a previously validated CSV. The same text is
// sent back; the server re-validates before writing anything.
type ImportCommitRequest struct {
	CSVContent string       `json:"csv_content" binding:"required"`
	Actor      ActorRequest `json:"actor" binding:"required"`
}
