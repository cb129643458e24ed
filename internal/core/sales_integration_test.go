package core_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"freshtrade/internal/core"
)

func TestSales_InsertDefaultsAndUpdate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewSalesService(store)

	id, err := svc.InsertSale(ctx, core.Sale{
		Item: "Papaya", Client: "B2B", Quantity: 100, Unit: "kg", Pcs: 50,
		Date: "2025-06-01", Time: "10:00", PONumber: "SO-1",
		Rate: decimal.NewFromInt(30), TotalValue: decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("InsertSale: %v", err)
	}

	sales, err := svc.AllSales(ctx)
	if err != nil {
		t.Fatalf("AllSales: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	if sales[0].PaymentStatus != core.StatusUnpaid {
		t.Errorf("expected default status %q, got %q", core.StatusUnpaid, sales[0].PaymentStatus)
	}

	mode := "UPI"
	updated := sales[0]
	updated.PaymentStatus = core.StatusPaid
	updated.ModeOfPayment = &mode
	updated.AmountPaid = decimal.NewFromInt(3000)
	if err := svc.UpdateSale(ctx, updated); err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}

	sales, err = svc.AllSales(ctx)
	if err != nil {
		t.Fatalf("AllSales: %v", err)
	}
	if sales[0].ID != int(id) || sales[0].PaymentStatus != core.StatusPaid {
		t.Errorf("expected sale %d paid, got %+v", id, sales[0])
	}
	if sales[0].ModeOfPayment == nil || *sales[0].ModeOfPayment != "UPI" {
		t.Errorf("expected mode UPI, got %v", sales[0].ModeOfPayment)
	}
}

func TestSales_BGradeRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewSalesService(store)

	if _, err := svc.InsertBGradeSale(ctx, core.BGradeSale{
		Item: "Kiwi", Client: "KD Enterprises", Quantity: 25,
		Rate: decimal.NewFromInt(12), Unit: "kg",
		TotalValue: decimal.NewFromInt(300),
		Date:       "2025-06-01", Time: "11:00", PONumber: "SO-2", Pcs: 75,
	}); err != nil {
		t.Fatalf("InsertBGradeSale: %v", err)
	}

	list, err := svc.LatestBGradeSales(ctx, 5)
	if err != nil {
		t.Fatalf("LatestBGradeSales: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 b-grade sale, got %d", len(list))
	}
	got := list[0]
	if got.Client != "KD Enterprises" {
		t.Errorf("expected client KD Enterprises, got %s", got.Client)
	}
	if got.Pcs != 75 || got.PONumber != "SO-2" {
		t.Errorf("pcs and po number mismatched: %+v", got)
	}
	if got.PaymentStatus != core.StatusUnpaid {
		t.Errorf("expected default status %q, got %q", core.StatusUnpaid, got.PaymentStatus)
	}
}

func TestSales_DumpAndMandi(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewSalesService(store)

	if _, err := svc.InsertDumpSale(ctx, core.DumpSale{
		Item: "Papaya", Quantity: 15, Unit: "kg", Pcs: 8,
		Date: "2025-06-01", Time: "12:00", PONumber: "PO-1",
	}); err != nil {
		t.Fatalf("InsertDumpSale: %v", err)
	}
	if _, err := svc.InsertMandiResale(ctx, core.MandiResale{
		Item: "Lemon", Quantity: 30, Unit: "kg", Pcs: 0,
		Date: "2025-06-01", Time: "13:00",
	}); err != nil {
		t.Fatalf("InsertMandiResale: %v", err)
	}

	dumps, err := svc.AllDumpSales(ctx)
	if err != nil {
		t.Fatalf("AllDumpSales: %v", err)
	}
	if len(dumps) != 1 || dumps[0].Item != "Papaya" {
		t.Errorf("unexpected dump sales %+v", dumps)
	}

	resales, err := svc.LatestMandiResales(ctx, 5)
	if err != nil {
		t.Fatalf("LatestMandiResales: %v", err)
	}
	if len(resales) != 1 || resales[0].Item != "Lemon" {
		t.Errorf("unexpected mandi resales %+v", resales)
	}
}

func TestSales_Waitlist(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewSalesService(store)

	id, err := svc.AddToWaitlist(ctx, core.WaitlistEntry{
		Item: "Papaya", Client: "B2B", PONumber: "SO-5",
		Quantity: 20, Unit: "kg", Pcs: 10,
	})
	if err != nil {
		t.Fatalf("AddToWaitlist: %v", err)
	}

	list, err := svc.Waitlisted(ctx, 10)
	if err != nil {
		t.Fatalf("Waitlisted: %v", err)
	}
	if len(list) != 1 || list[0].PONumber != "SO-5" {
		t.Fatalf("unexpected waitlist %+v", list)
	}

	if err := svc.DeleteWaitlisted(ctx, id); err != nil {
		t.Fatalf("DeleteWaitlisted: %v", err)
	}
	list, err = svc.Waitlisted(ctx, 10)
	if err != nil {
		t.Fatalf("Waitlisted: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty waitlist, got %d entries", len(list))
	}
}
