package dtos

type CreateTransactionInput struct {
	BusinessUnit string `json:"businessUnit" binding:"required,businessunit"`
	Type         string `json:"type" binding:"required,oneof=income expense"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
	OccurredAt   string `json:"occurredAt,omitempty"`
}

type TransactionFilter struct {
	Start        string `form:"start"`
	End          string `form:"end"`
	BusinessType string `form:"businessType" binding:"omitempty,businessunit"`
}
