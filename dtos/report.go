package dtos

type CategoryTotal struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Total    int64  `json:"total"`
}

type ReportSummary struct {
	GrossSales         int64           `json:"gross_sales"`
	NonSaleIncome      int64           `json:"non_sale_income"`
	Expenses           int64           `json:"expenses"`
	InventoryValuation int64           `json:"inventory_valuation"`
	NetBalance         int64           `json:"net_balance"`
	ByCategory         []CategoryTotal `json:"by_category"`
}

type RangeFilter struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
