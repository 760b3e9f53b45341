package services

import (
	"errors"
	"testing"

	"aura-api/models"

	"gorm.io/gorm"
)

func TestOpenRegisterOnlyOnePerOperator(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegisterService(db)

	if _, err := svc.Open(1, 5000); err != nil {
		t.Fatalf("first open: %v", err)
	}

	if _, err := svc.Open(1, 3000); !errors.Is(err, ErrRegisterAlreadyOpen) {
		t.Fatalf("second open: want ErrRegisterAlreadyOpen, got %v", err)
	}

	if n := countRows(t, db, &models.CashRegister{}); n != 1 {
		t.Fatalf("want 1 register row, got %d", n)
	}

	// A different operator is unaffected.
	if _, err := svc.Open(2, 1000); err != nil {
		t.Fatalf("open for other operator: %v", err)
	}
}

func TestCloseRegisterWithoutOpen(t *testing.T) {
	db := openTestDB(t)

	if _, err := NewRegisterService(db).Close(1, 1000); !errors.Is(err, ErrNoOpenRegister) {
		t.Fatalf("want ErrNoOpenRegister, got %v", err)
	}
}

func seedCashSale(t *testing.T, db *gorm.DB, registerID uint, status string, amount int64, method string) {
	t.Helper()

	sale := models.Sale{
		RegisterID:   registerID,
		OperatorID:   1,
		BusinessUnit: "bakery",
		TotalAmount:  amount,
		Status:       status,
		FiscalStatus: models.FiscalNone,
		Payments: []models.Payment{
			{Method: method, Amount: amount},
		},
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
}

func TestCloseRegisterDifference(t *testing.T) {
	cases := []struct {
		name           string
		countedAmount  int64
		wantDifference int64
	}{
		{"exact count", 6200, 0},
		{"short drawer", 6000, -200},
		{"over count", 6500, 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := openTestDB(t)
			svc := NewRegisterService(db)

			register := openRegisterFor(t, db, 1, 5000)
			seedCashSale(t, db, register.ID, models.SaleCompleted, 1200, models.PaymentCash)

			closed, err := svc.Close(1, tc.countedAmount)
			if err != nil {
				t.Fatalf("close: %v", err)
			}

			if closed.Status != models.RegisterClosed {
				t.Fatalf("status = %q, want closed", closed.Status)
			}
			if closed.ExpectedAmount == nil || *closed.ExpectedAmount != 6200 {
				t.Fatalf("expected amount = %v, want 6200", closed.ExpectedAmount)
			}
			if closed.Difference == nil || *closed.Difference != tc.wantDifference {
				t.Fatalf("difference = %v, want %d", closed.Difference, tc.wantDifference)
			}
			if closed.ClosedAt == nil {
				t.Fatal("closed_at not set")
			}
		})
	}
}

func TestCloseRegisterDeductsChangeGiven(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegisterService(db)

	register := openRegisterFor(t, db, 1, 5000)

	// Customer tendered 1500 cash on a 1200 sale: 300 went back out.
	sale := models.Sale{
		RegisterID:   register.ID,
		OperatorID:   1,
		BusinessUnit: "bakery",
		TotalAmount:  1200,
		ChangeAmount: 300,
		Status:       models.SaleCompleted,
		FiscalStatus: models.FiscalNone,
		Payments: []models.Payment{
			{Method: models.PaymentCash, Amount: 1500},
		},
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	closed, err := svc.Close(1, 6200)
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	// expected = 5000 + 1500 - 300, the drawer only kept the sale total.
	if *closed.ExpectedAmount != 6200 {
		t.Fatalf("expected amount = %d, want 6200", *closed.ExpectedAmount)
	}
	if *closed.Difference != 0 {
		t.Fatalf("difference = %d, want 0", *closed.Difference)
	}
}

func TestCloseRegisterIgnoresNonCashAndCancelled(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegisterService(db)

	register := openRegisterFor(t, db, 1, 5000)
	seedCashSale(t, db, register.ID, models.SaleCompleted, 1200, models.PaymentCash)
	seedCashSale(t, db, register.ID, models.SaleCompleted, 4000, models.PaymentCard)
	seedCashSale(t, db, register.ID, models.SaleCompleted, 2500, models.PaymentPix)
	seedCashSale(t, db, register.ID, models.SaleCancelled, 900, models.PaymentCash)

	closed, err := svc.Close(1, 6200)
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	// Only the completed cash sale counts: expected = 5000 + 1200.
	if *closed.ExpectedAmount != 6200 {
		t.Fatalf("expected amount = %d, want 6200", *closed.ExpectedAmount)
	}
	if *closed.Difference != 0 {
		t.Fatalf("difference = %d, want 0", *closed.Difference)
	}
}

func TestCloseRegisterIgnoresOtherRegistersSales(t *testing.T) {
	db := openTestDB(t)
	svc := NewRegisterService(db)

	mine := openRegisterFor(t, db, 1, 1000)
	other := openRegisterFor(t, db, 2, 1000)
	seedCashSale(t, db, other.ID, models.SaleCompleted, 7700, models.PaymentCash)
	_ = mine

	closed, err := svc.Close(1, 1000)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if *closed.ExpectedAmount != 1000 {
		t.Fatalf("expected amount = %d, want 1000", *closed.ExpectedAmount)
	}
}
