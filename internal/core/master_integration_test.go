package core_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"freshtrade/internal/core"
)

func TestMaster_AddAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewMasterService(store)

	t.Run("AddItem_TrimsAndDeduplicates", func(t *testing.T) {
		if err := svc.AddItem(ctx, "  Mango  "); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if err := svc.AddItem(ctx, "Mango"); err != nil {
			t.Fatalf("AddItem duplicate: %v", err)
		}
		items, err := svc.Items(ctx)
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		count := 0
		for _, it := range items {
			if it == "Mango" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected exactly one Mango, got %d", count)
		}
	})

	t.Run("AddItem_BlankRejected", func(t *testing.T) {
		err := svc.AddItem(ctx, "   ")
		if !errors.Is(err, core.ErrBlankName) {
			t.Errorf("expected ErrBlankName, got %v", err)
		}
	})

	t.Run("AddProductManager_Inserts", func(t *testing.T) {
		if err := svc.AddProductManager(ctx, "Priya"); err != nil {
			t.Fatalf("AddProductManager: %v", err)
		}
		pms, err := svc.ProductManagers(ctx)
		if err != nil {
			t.Fatalf("ProductManagers: %v", err)
		}
		if !slices.Contains(pms, "Priya") {
			t.Error("expected Priya in product managers")
		}
	})

	t.Run("Items_SortedCaseInsensitive", func(t *testing.T) {
		if err := svc.AddItem(ctx, "apricot"); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if err := svc.AddItem(ctx, "Banana"); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		items, err := svc.Items(ctx)
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		ia := slices.Index(items, "apricot")
		ib := slices.Index(items, "Banana")
		if ia == -1 || ib == -1 {
			t.Fatalf("missing inserted items in %v", items)
		}
		if ia > ib {
			t.Errorf("expected apricot before Banana, got positions %d and %d", ia, ib)
		}
	})

	t.Run("SeededLists_Present", func(t *testing.T) {
		items, err := svc.Items(ctx)
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		if !slices.Contains(items, "Papaya") {
			t.Error("expected seeded item Papaya")
		}
		vendors, err := svc.PurchaseVendors(ctx)
		if err != nil {
			t.Fatalf("PurchaseVendors: %v", err)
		}
		if !slices.Contains(vendors, "Dhaniram") {
			t.Error("expected seeded purchase vendor Dhaniram")
		}
	})
}

func TestMaster_UpsertVendor(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	svc := core.NewMasterService(store)

	loc := "Azadpur"
	km := 12.5
	if err := svc.UpsertVendor(ctx, "Fresh Basket", &loc, &km); err != nil {
		t.Fatalf("UpsertVendor: %v", err)
	}

	t.Run("ReplacesOnSameName", func(t *testing.T) {
		loc2 := "Okhla"
		km2 := 22.0
		if err := svc.UpsertVendor(ctx, "Fresh Basket", &loc2, &km2); err != nil {
			t.Fatalf("UpsertVendor replace: %v", err)
		}
		vendors, err := svc.VendorsWithDetails(ctx)
		if err != nil {
			t.Fatalf("VendorsWithDetails: %v", err)
		}
		found := 0
		for _, v := range vendors {
			if v.Name != "Fresh Basket" {
				continue
			}
			found++
			if v.Location == nil || *v.Location != "Okhla" {
				t.Errorf("expected location Okhla, got %v", v.Location)
			}
			if v.Km == nil || *v.Km != 22.0 {
				t.Errorf("expected km 22, got %v", v.Km)
			}
		}
		if found != 1 {
			t.Errorf("expected one Fresh Basket row, got %d", found)
		}
	})

	t.Run("MirroredIntoBGradeClients", func(t *testing.T) {
		clients, err := svc.BGradeClients(ctx)
		if err != nil {
			t.Fatalf("BGradeClients: %v", err)
		}
		if !slices.Contains(clients, "Fresh Basket") {
			t.Error("expected vendor mirrored into b-grade clients")
		}
	})

	t.Run("NilDetailsAllowed", func(t *testing.T) {
		if err := svc.UpsertVendor(ctx, "No Details Co", nil, nil); err != nil {
			t.Fatalf("UpsertVendor: %v", err)
		}
		names, err := svc.VendorNames(ctx)
		if err != nil {
			t.Fatalf("VendorNames: %v", err)
		}
		if !slices.Contains(names, "No Details Co") {
			t.Error("expected No Details Co in vendor names")
		}
	})
}
