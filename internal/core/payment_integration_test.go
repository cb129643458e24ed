package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"freshtrade/internal/core"
)

func TestPayment_UpdateStatus(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	payments := core.NewPaymentService(store)
	purchases := core.NewPurchaseService(store)

	id, err := purchases.Insert(ctx, core.Purchase{
		Item: "Papaya", Vendor: "Dhaniram", PONumber: "PO-1",
		QtyReceive: 100, UnitReceive: "kg",
		Date: "2025-06-01", Time: "09:00",
		Rate: decimal.NewFromInt(20), TotalValue: decimal.NewFromInt(2000),
	})
	if err != nil {
		t.Fatalf("Insert purchase: %v", err)
	}

	t.Run("PartialKeepsAmounts", func(t *testing.T) {
		mode := "NEFT"
		err := payments.UpdateStatus(ctx, core.PaymentStatusUpdate{
			Entity:        core.PaymentEntityPurchases,
			ID:            id,
			Status:        core.StatusPartial,
			AmountPaid:    decimal.NewFromInt(500),
			AmountDue:     decimal.NewFromInt(1500),
			ModeOfPayment: &mode,
		})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		got := loadPurchase(t, purchases, ctx, id)
		if got.PaymentStatus != core.StatusPartial {
			t.Errorf("expected status Partial, got %s", got.PaymentStatus)
		}
		if !got.AmountDue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected due 1500, got %s", got.AmountDue)
		}
		if got.ModeOfPayment == nil || *got.ModeOfPayment != "NEFT" {
			t.Errorf("expected mode NEFT, got %v", got.ModeOfPayment)
		}
	})

	t.Run("UnpaidZeroesDueAndClearsMode", func(t *testing.T) {
		mode := "Cash"
		err := payments.UpdateStatus(ctx, core.PaymentStatusUpdate{
			Entity:        core.PaymentEntityPurchases,
			ID:            id,
			Status:        core.StatusUnpaid,
			AmountPaid:    decimal.Zero,
			AmountDue:     decimal.NewFromInt(999),
			ModeOfPayment: &mode,
		})
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		got := loadPurchase(t, purchases, ctx, id)
		if got.PaymentStatus != core.StatusUnpaid {
			t.Errorf("expected status Unpaid, got %s", got.PaymentStatus)
		}
		if !got.AmountDue.IsZero() {
			t.Errorf("expected due zeroed, got %s", got.AmountDue)
		}
		if got.ModeOfPayment != nil {
			t.Errorf("expected mode cleared, got %q", *got.ModeOfPayment)
		}
	})
}

func TestPayment_UnpaidNormalizedForEveryEntity(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	payments := core.NewPaymentService(store)

	tables := []string{"lmd_data", "fmd_data", "purchases", "sales", "b_grade_sales"}
	for _, table := range tables {
		t.Run(table, func(t *testing.T) {
			res, err := store.ExecContext(ctx,
				"INSERT INTO "+table+" (payment_status, amount_paid, amount_due, mode_of_payment) VALUES (?, ?, ?, ?)",
				core.StatusPartial, 200, 500, "Cash")
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				t.Fatalf("last insert id: %v", err)
			}

			entity, err := core.ParsePaymentEntity(table)
			if err != nil {
				t.Fatalf("ParsePaymentEntity(%q): %v", table, err)
			}
			mode := "Cash"
			err = payments.UpdateStatus(ctx, core.PaymentStatusUpdate{
				Entity:        entity,
				ID:            id,
				Status:        core.StatusUnpaid,
				AmountPaid:    decimal.Zero,
				AmountDue:     decimal.NewFromInt(500),
				ModeOfPayment: &mode,
			})
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}

			var status string
			var due decimal.Decimal
			var gotMode *string
			err = store.QueryRowContext(ctx,
				"SELECT payment_status, amount_due, mode_of_payment FROM "+table+" WHERE id = ?", id,
			).Scan(&status, &due, &gotMode)
			if err != nil {
				t.Fatalf("query row: %v", err)
			}
			if status != core.StatusUnpaid {
				t.Errorf("expected status Unpaid, got %s", status)
			}
			if !due.IsZero() {
				t.Errorf("expected due zeroed, got %s", due)
			}
			if gotMode != nil {
				t.Errorf("expected mode cleared, got %q", *gotMode)
			}
		})
	}
}

func loadPurchase(t *testing.T, svc core.PurchaseService, ctx context.Context, id int64) core.Purchase {
	t.Helper()
	list, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for _, p := range list {
		if p.ID == int(id) {
			return p
		}
	}
	t.Fatalf("purchase %d not found", id)
	return core.Purchase{}
}

func TestPayment_EntityAllowList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	payments := core.NewPaymentService(store)

	t.Run("ParseRejectsUnknownTable", func(t *testing.T) {
		_, err := core.ParsePaymentEntity("sqlite_master")
		if !errors.Is(err, core.ErrUnknownEntity) {
			t.Errorf("expected ErrUnknownEntity, got %v", err)
		}
	})

	t.Run("DeleteRejectsUnknownTable", func(t *testing.T) {
		_, err := payments.DeleteEntries(ctx, "so_items", []int64{1})
		if !errors.Is(err, core.ErrUnknownEntity) {
			t.Errorf("expected ErrUnknownEntity for so_items, got %v", err)
		}
	})

	t.Run("DeleteEmptyIDsIsNoop", func(t *testing.T) {
		n, err := payments.DeleteEntries(ctx, "sales", nil)
		if err != nil {
			t.Fatalf("DeleteEntries: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 deletions, got %d", n)
		}
	})
}

func TestPayment_History(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	payments := core.NewPaymentService(store)
	purchases := core.NewPurchaseService(store)

	id, err := purchases.Insert(ctx, core.Purchase{
		Item: "Papaya", Vendor: "Dhaniram", PONumber: "PO-1",
		QtyReceive: 10, UnitReceive: "kg",
		Date: "2025-06-01", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("Insert purchase: %v", err)
	}

	for _, amount := range []int64{300, 700} {
		if _, err := payments.AddRecord(ctx, core.PaymentRecord{
			ParentTable:   core.PaymentEntityPurchases,
			ParentID:      id,
			AmountPaid:    decimal.NewFromInt(amount),
			ModeOfPayment: "UPI",
			PaymentDate:   "2025-06-05",
			PaymentTime:   "10:00",
		}); err != nil {
			t.Fatalf("AddRecord: %v", err)
		}
	}

	recs, err := payments.History(ctx, core.PaymentEntityPurchases, id)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	t.Run("OtherParentEmpty", func(t *testing.T) {
		recs, err := payments.History(ctx, core.PaymentEntityPurchases, id+1)
		if err != nil {
			t.Fatalf("History: %v", err)
		}
		if len(recs) != 0 {
			t.Errorf("expected no records, got %d", len(recs))
		}
	})
}

func TestPayment_SumMetrics(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	payments := core.NewPaymentService(store)
	purchases := core.NewPurchaseService(store)

	seed := []struct {
		vendor string
		date   string
		due    int64
		total  int64
	}{
		{"Dhaniram", "2025-06-01", 400, 1000},
		{"Dhaniram", "2025-06-10", 600, 2000},
		{"Mohit", "2025-06-05", 50, 500},
	}
	for _, s := range seed {
		if _, err := purchases.Insert(ctx, core.Purchase{
			Item: "Papaya", Vendor: s.vendor, PONumber: "PO-1",
			QtyReceive: 10, UnitReceive: "kg",
			Date: s.date, Time: "09:00",
			AmountDue:  decimal.NewFromInt(s.due),
			TotalValue: decimal.NewFromInt(s.total),
		}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	t.Run("DueByVendor", func(t *testing.T) {
		sum, err := payments.SumMetric(ctx, "purchase_amount_due_by_vendor", []string{"Dhaniram"})
		if err != nil {
			t.Fatalf("SumMetric: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected 1000, got %s", sum)
		}
	})

	t.Run("TotalValueByDateRange", func(t *testing.T) {
		sum, err := payments.SumMetric(ctx, "purchase_total_value_by_date_range", []string{"2025-06-01", "2025-06-07"})
		if err != nil {
			t.Fatalf("SumMetric: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected 1500, got %s", sum)
		}
	})

	t.Run("UnknownMetricRejected", func(t *testing.T) {
		_, err := payments.SumMetric(ctx, "drop_table", nil)
		if !errors.Is(err, core.ErrUnknownMetric) {
			t.Errorf("expected ErrUnknownMetric, got %v", err)
		}
	})

	t.Run("NoRowsIsZero", func(t *testing.T) {
		sum, err := payments.SumMetric(ctx, "purchase_amount_due_by_vendor", []string{"Nobody"})
		if err != nil {
			t.Fatalf("SumMetric: %v", err)
		}
		if !sum.IsZero() {
			t.Errorf("expected zero, got %s", sum)
		}
	})
}
