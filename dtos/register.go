package dtos

// Register amounts come over the wire in decimal currency units and are
// converted to cents at the boundary.
type OpenRegisterInput struct {
	OpeningAmount float64 `json:"openingAmount" binding:"min=0"`
}

type CloseRegisterInput struct {
	ClosingAmount float64 `json:"closingAmount" binding:"min=0"`
}
