package services

import (
	"time"

	"aura-api/dtos"
	"aura-api/models"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Summary recomputes everything from the ledger tables on every call.
// Net balance = gross sales + non-sale income - expenses - current
// inventory valuation.
func (s *ReportService) Summary(start, end time.Time) (*dtos.ReportSummary, error) {
	var grossSales int64
	err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND created_at BETWEEN ? AND ?", models.SaleCompleted, start, end).
		Scan(&grossSales).Error
	if err != nil {
		return nil, err
	}

	var byCategory []dtos.CategoryTotal
	err = s.db.Model(&models.Transaction{}).
		Select("category, type, COALESCE(SUM(amount), 0) AS total").
		Where("occurred_at BETWEEN ? AND ?", start, end).
		Group("category, type").
		Order("category").
		Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}

	var nonSaleIncome, expenses int64
	for _, ct := range byCategory {
		switch ct.Type {
		case models.TransactionIncome:
			if ct.Category != models.CategorySales {
				nonSaleIncome += ct.Total
			}
		case models.TransactionExpense:
			expenses += ct.Total
		}
	}

	var valuation int64
	err = s.db.Model(&models.InventoryRecord{}).
		Select("COALESCE(SUM(quantity * cost_price), 0)").
		Scan(&valuation).Error
	if err != nil {
		return nil, err
	}

	return &dtos.ReportSummary{
		GrossSales:         grossSales,
		NonSaleIncome:      nonSaleIncome,
		Expenses:           expenses,
		InventoryValuation: valuation,
		NetBalance:         grossSales + nonSaleIncome - expenses - valuation,
		ByCategory:         byCategory,
	}, nil
}

type TopSeller struct {
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type Dashboard struct {
	TodaySales        int64       `json:"today_sales"`
	TodayTransactions int64       `json:"today_transactions"`
	LowStock          int64       `json:"low_stock"`
	TopSellingItems   []TopSeller `json:"top_selling_items"`
}

func (s *ReportService) Dashboard() (*Dashboard, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todaySales int64
	err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND created_at >= ?", models.SaleCompleted, dayStart).
		Scan(&todaySales).Error
	if err != nil {
		return nil, err
	}

	var todayCount int64
	err = s.db.Model(&models.Sale{}).
		Where("status = ? AND created_at >= ?", models.SaleCompleted, dayStart).
		Count(&todayCount).Error
	if err != nil {
		return nil, err
	}

	var lowStock int64
	err = s.db.Model(&models.InventoryRecord{}).
		Where("min_stock > 0 AND quantity <= min_stock").
		Count(&lowStock).Error
	if err != nil {
		return nil, err
	}

	var topItems []TopSeller
	err = s.db.Model(&models.SaleItem{}).
		Select("sale_items.item_id, SUM(sale_items.quantity) AS quantity").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status = ? AND sale_items.item_type = ? AND sale_items.item_id IS NOT NULL",
			models.SaleCompleted, models.ItemTypeProduct).
		Group("sale_items.item_id").
		Order("quantity DESC").
		Limit(5).
		Scan(&topItems).Error
	if err != nil {
		return nil, err
	}

	for i, ti := range topItems {
		var record models.InventoryRecord
		if err := s.db.First(&record, ti.ItemID).Error; err == nil {
			topItems[i].Name = record.Name
		}
	}

	return &Dashboard{
		TodaySales:        todaySales,
		TodayTransactions: todayCount,
		LowStock:          lowStock,
		TopSellingItems:   topItems,
	}, nil
}
