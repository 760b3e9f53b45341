package dtos

type PrintLabelInput struct {
	ProductName string  `json:"productName" binding:"required"`
	Barcode     *string `json:"barcode,omitempty"`
	Price       int64   `json:"price" binding:"min=0"`
	Copies      int     `json:"copies" binding:"omitempty,gt=0"`
}
