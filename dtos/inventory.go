package dtos

// UpsertInventoryInput creates a record when ID is nil and updates the
// existing row in place when it is set. Prices are cents.
type UpsertInventoryInput struct {
	ID              *uint   `json:"id,omitempty"`
	Name            string  `json:"name" binding:"required"`
	BusinessUnit    string  `json:"businessUnit" binding:"required,businessunit"`
	Unit            *string `json:"unit,omitempty"`
	ItemsPerPackage *int    `json:"itemsPerPackage,omitempty" binding:"omitempty,gt=0"`
	Quantity        int     `json:"quantity"`
	CostPrice       int64   `json:"costPrice" binding:"min=0"`
	SalePrice       int64   `json:"salePrice" binding:"min=0"`
	Barcode         *string `json:"barcode,omitempty"`
	ExpiryDate      *string `json:"expiryDate,omitempty"`
	MinStock        int     `json:"minStock" binding:"min=0"`
}

type RestockInput struct {
	Quantity        int     `json:"quantity" binding:"required,gt=0"`
	Unit            *string `json:"unit,omitempty"`
	ItemsPerPackage *int    `json:"itemsPerUnit,omitempty" binding:"omitempty,gt=0"`
	CostPrice       *int64  `json:"costPrice,omitempty" binding:"omitempty,min=0"`
	ExpiryDate      *string `json:"expiryDate,omitempty"`
}
