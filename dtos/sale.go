package dtos

type SaleItemInput struct {
	ItemType    string  `json:"itemType" binding:"required,oneof=product service custom"`
	ItemID      *uint   `json:"itemId,omitempty"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   int64   `json:"unitPrice" binding:"min=0"`
}

type SalePaymentInput struct {
	Method string `json:"method" binding:"required,oneof=cash card pix"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type SaleInput struct {
	BusinessUnit  string  `json:"businessUnit" binding:"required,businessunit"`
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerTaxID *string `json:"customerTaxId,omitempty"`
}

type CreateSaleInput struct {
	Sale     SaleInput          `json:"sale" binding:"required"`
	Items    []SaleItemInput    `json:"items" binding:"required,min=1,dive"`
	Payments []SalePaymentInput `json:"payments" binding:"required,min=1,dive"`
	TicketID *uint              `json:"ticketId,omitempty"`
}

type SaleRangeFilter struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
