package core_test

import (
	"context"
	"slices"
	"testing"

	"freshtrade/internal/core"
)

func strPtr(s string) *string { return &s }

func TestPurchase_InsertDefaultsAndLatest(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewPurchaseService(store)

	id, err := svc.Insert(ctx, core.Purchase{
		Item: "Papaya", Vendor: "Dhaniram", PONumber: "PO-1",
		QtyReceive: 100, UnitReceive: "kg", PcsReceive: 50,
		QtyAccept: 90, UnitAccept: "kg", PcsAccept: 45,
		QtyReject: 10, UnitReject: "kg", PcsReject: 5,
		ReasonForRejection: "bruising",
		Date:               "2025-06-01", Time: "09:30",
		ItemTag: strPtr("dhani-AM-1"),
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a nonzero purchase id")
	}

	list, err := svc.Latest(ctx, 5)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 purchase, got %d", len(list))
	}
	got := list[0]
	if got.PaymentStatus != core.StatusUnpaid {
		t.Errorf("expected default payment status %q, got %q", core.StatusUnpaid, got.PaymentStatus)
	}
	if got.ItemTag == nil || *got.ItemTag != "dhani-AM-1" {
		t.Errorf("expected item tag dhani-AM-1, got %v", got.ItemTag)
	}
	if got.QtyAccept != 90 {
		t.Errorf("expected qty accept 90, got %v", got.QtyAccept)
	}
}

func TestPurchase_TagLookups(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewPurchaseService(store)

	rows := []struct {
		item, po, tag string
	}{
		{"Papaya", "PO-1", "dhani-AM-1"},
		{"Papaya", "PO-2", "dhani-AM-2"},
		{"Lemon", "PO-3", "mohit-PM-1"},
	}
	for _, row := range rows {
		if _, err := svc.Insert(ctx, core.Purchase{
			Item: row.item, Vendor: "x", PONumber: row.po,
			QtyReceive: 10, UnitReceive: "kg",
			Date: "2025-06-01", Time: "09:00",
			ItemTag: strPtr(row.tag),
		}); err != nil {
			t.Fatalf("Insert %s: %v", row.tag, err)
		}
	}

	t.Run("PurchasedItems_Distinct", func(t *testing.T) {
		items, err := svc.PurchasedItems(ctx)
		if err != nil {
			t.Fatalf("PurchasedItems: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 distinct items, got %v", items)
		}
	})

	t.Run("TagsForItem", func(t *testing.T) {
		tags, err := svc.TagsForItem(ctx, "Papaya")
		if err != nil {
			t.Fatalf("TagsForItem: %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %v", tags)
		}
		if !slices.Contains(tags, "dhani-AM-1") || !slices.Contains(tags, "dhani-AM-2") {
			t.Errorf("unexpected tags %v", tags)
		}
	})

	t.Run("PONumberByTag", func(t *testing.T) {
		num, err := svc.PONumberByTag(ctx, "Lemon", "mohit-PM-1")
		if err != nil {
			t.Fatalf("PONumberByTag: %v", err)
		}
		if num == nil || *num != "PO-3" {
			t.Errorf("expected PO-3, got %v", num)
		}
	})

	t.Run("PONumberByTag_Miss", func(t *testing.T) {
		num, err := svc.PONumberByTag(ctx, "Lemon", "no-such-tag")
		if err != nil {
			t.Fatalf("PONumberByTag: %v", err)
		}
		if num != nil {
			t.Errorf("expected nil for unknown tag, got %q", *num)
		}
	})
}

func TestPurchase_NextTagSequence(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewPurchaseService(store)

	insert := func(tag string) {
		t.Helper()
		if _, err := svc.Insert(ctx, core.Purchase{
			Item: "Papaya", Vendor: "x", PONumber: "PO-1",
			QtyReceive: 1, UnitReceive: "kg",
			Date: "2025-06-01", Time: "09:00",
			ItemTag: strPtr(tag),
		}); err != nil {
			t.Fatalf("Insert %s: %v", tag, err)
		}
	}

	t.Run("EmptyTable_StartsAtOne", func(t *testing.T) {
		n, err := svc.NextTagSequence(ctx, "dhani", "AM")
		if err != nil {
			t.Fatalf("NextTagSequence: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1, got %d", n)
		}
	})

	t.Run("IncrementsNewest", func(t *testing.T) {
		insert("dhani-AM-1")
		insert("dhani-AM-2")
		n, err := svc.NextTagSequence(ctx, "dhani", "AM")
		if err != nil {
			t.Fatalf("NextTagSequence: %v", err)
		}
		if n != 3 {
			t.Errorf("expected 3, got %d", n)
		}
	})

	t.Run("OtherDayPart_Independent", func(t *testing.T) {
		n, err := svc.NextTagSequence(ctx, "dhani", "PM")
		if err != nil {
			t.Fatalf("NextTagSequence: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 for untouched day part, got %d", n)
		}
	})

	t.Run("MalformedNewestSkipped", func(t *testing.T) {
		insert("dhani-AM-oops")
		n, err := svc.NextTagSequence(ctx, "dhani", "AM")
		if err != nil {
			t.Fatalf("NextTagSequence: %v", err)
		}
		if n != 3 {
			t.Errorf("expected malformed tag skipped and 3 returned, got %d", n)
		}
	})
}
