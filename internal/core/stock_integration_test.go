package core_test

import (
	"context"
	"testing"

	"freshtrade/internal/core"
)

func TestStock_InsertUpdateAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewStockService(store)

	u := core.StockUpdate{
		Item:     "Papaya",
		Date:     "2025-06-01",
		Time:     "14:00",
		PONumber: "PO-1",
	}
	u.AGradeQty, u.AGradeUnit, u.PcsAGrade = 60, "kg", 30
	u.BGradeQty, u.BGradeUnit, u.PcsBGrade = 25, "kg", 12

	id, err := svc.Insert(ctx, u)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	u.ID = int(id)
	u.AGradeQty = 55
	if err := svc.Update(ctx, u); err != nil {
		t.Fatalf("Update: %v", err)
	}

	list, err := svc.Latest(ctx, 5)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 update, got %d", len(list))
	}
	if list[0].AGradeQty != 55 {
		t.Errorf("expected a-grade qty 55, got %v", list[0].AGradeQty)
	}
	if list[0].PcsBGrade != 12 {
		t.Errorf("expected b-grade pcs 12, got %v", list[0].PcsBGrade)
	}
}

func TestStock_TotalForDate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewStockService(store)

	first := core.StockUpdate{Item: "Papaya", Date: "2025-06-01", Time: "09:00", PONumber: "PO-1"}
	first.AGradeQty = 40
	first.BGradeQty = 10
	second := core.StockUpdate{Item: "Papaya", Date: "2025-06-01", Time: "17:00", PONumber: "PO-2"}
	second.AGradeQty = 20
	other := core.StockUpdate{Item: "Lemon", Date: "2025-06-01", Time: "10:00", PONumber: "PO-3"}
	other.AGradeQty = 99

	for _, u := range []core.StockUpdate{first, second, other} {
		if _, err := svc.Insert(ctx, u); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	total, err := svc.TotalForDate(ctx, "Papaya", "2025-06-01")
	if err != nil {
		t.Fatalf("TotalForDate: %v", err)
	}
	if total != 70 {
		t.Errorf("expected total 70, got %v", total)
	}

	t.Run("NoRowsIsZero", func(t *testing.T) {
		total, err := svc.TotalForDate(ctx, "Papaya", "2099-01-01")
		if err != nil {
			t.Fatalf("TotalForDate: %v", err)
		}
		if total != 0 {
			t.Errorf("expected 0 for empty date, got %v", total)
		}
	})
}
