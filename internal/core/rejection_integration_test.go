package core_test

import (
	"context"
	"testing"

	"freshtrade/internal/core"
)

func TestRejection_ReceivedLifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewRejectionService(store)

	id, err := svc.InsertReceived(ctx, core.RejectionReceived{
		ClientName: "B2B", Item: "Papaya", Quantity: 12, Unit: "kg", Pcs: 6,
		SampleQuantity: 2, Reason: "overripe",
		Date: "2025-06-03", Time: "16:00", PONumber: "SO-1",
		ItemTag: strPtr("dhani-AM-1"),
	})
	if err != nil {
		t.Fatalf("InsertReceived: %v", err)
	}

	list, err := svc.AllReceived(ctx)
	if err != nil {
		t.Fatalf("AllReceived: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 rejection, got %d", len(list))
	}
	got := list[0]
	if got.ID != int(id) || got.Reason != "overripe" {
		t.Errorf("unexpected rejection %+v", got)
	}
	if got.ItemTag == nil || *got.ItemTag != "dhani-AM-1" {
		t.Errorf("expected tag dhani-AM-1, got %v", got.ItemTag)
	}

	got.Quantity = 14
	if err := svc.UpdateReceived(ctx, got); err != nil {
		t.Fatalf("UpdateReceived: %v", err)
	}
	list, err = svc.LatestReceived(ctx, 10)
	if err != nil {
		t.Fatalf("LatestReceived: %v", err)
	}
	if len(list) != 1 || list[0].Quantity != 14 {
		t.Errorf("expected updated quantity 14, got %+v", list)
	}
}

func TestRejection_VendorOrdering(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewRejectionService(store)

	for _, po := range []string{"PO-1", "PO-2", "PO-3"} {
		if _, err := svc.InsertVendorRejection(ctx, core.VendorRejection{
			Item: "Papaya", Vendor: "Dhaniram", PONumber: po,
			QuantitySent: 5, Unit: "kg", Pcs: 3,
			Date: "2025-06-03", Time: "17:00",
		}); err != nil {
			t.Fatalf("InsertVendorRejection %s: %v", po, err)
		}
	}

	list, err := svc.LatestVendorRejections(ctx, 2)
	if err != nil {
		t.Fatalf("LatestVendorRejections: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rejections, got %d", len(list))
	}
	if list[0].PONumber != "PO-3" {
		t.Errorf("expected newest first, got %s", list[0].PONumber)
	}

	all, err := svc.AllVendorRejections(ctx)
	if err != nil {
		t.Fatalf("AllVendorRejections: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rejections, got %d", len(all))
	}
}
