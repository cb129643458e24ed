package web

import (
	"net/http"

	"freshtrade/internal/core"

	"github.com/go-chi/chi/v5"
)

// Services bundles the core services the handler depends on.
type Services struct {
	Masters        core.MasterService
	SalesOrders    core.SalesOrderService
	PurchaseOrders core.PurchaseOrderService
	Logistics      core.LogisticsService
	Purchases      core.PurchaseService
	Stock          core.StockService
	Sales          core.SalesService
	Rejections     core.RejectionService
	Payments       core.PaymentService
}

// Handler holds the core services and the chi router.
type Handler struct {
	svc    Services
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc Services, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/health", h.health)

	// ── Master data ───────────────────────────────────────────────────────────
	r.Post("/insert_item", h.insertItem)
	r.Post("/insert_product_manager", h.insertProductManager)
	r.Post("/insert_purchase_vendor", h.insertPurchaseVendor)
	r.Post("/insert_vendor", h.insertVendor)
	r.Get("/get_items", h.getItems)
	r.Get("/get_product_managers", h.getProductManagers)
	r.Get("/get_purchase_vendors", h.getPurchaseVendors)
	r.Get("/get_vendors", h.getVendors)
	r.Get("/get_vendors_with_details", h.getVendorsWithDetails)
	r.Get("/get_b_grade_clients", h.getBGradeClients)
	r.Get("/get_purchased_items", h.getPurchasedItems)

	// ── Sales orders ──────────────────────────────────────────────────────────
	r.Post("/insert_generated_so", h.insertGeneratedSO)
	r.Get("/get_latest_generated_sos_with_items", h.getLatestGeneratedSOsWithItems)
	r.Get("/get_all_generated_sos_with_items", h.getAllGeneratedSOsWithItems)
	r.Get("/get_available_sos_for_sale", h.getAvailableSOsForSale)
	r.Get("/get_last_so_number", h.getLastSONumber)

	// ── Purchase orders ───────────────────────────────────────────────────────
	r.Post("/insert_generated_po", h.insertGeneratedPO)
	r.Get("/get_latest_generated_pos", h.getLatestGeneratedPOs)
	r.Get("/get_all_generated_pos", h.getAllGeneratedPOs)
	r.Get("/get_available_pos_for_purchase", h.getAvailablePOsForPurchase)
	r.Get("/get_last_po_number", h.getLastPONumber)

	// ── Logistics ─────────────────────────────────────────────────────────────
	r.Post("/insert_lmd_data", h.insertLMDData)
	r.Put("/update_lmd_data", h.updateLMDData)
	r.Delete("/delete_lmd_data", h.deleteLMDData)
	r.Get("/get_all_lmd_data", h.getAllLMDData)
	r.Get("/get_latest_lmd_data", h.getLatestLMDData)
	r.Get("/get_filtered_lmd_data", h.getFilteredLMDData)
	r.Post("/insert_fmd_data", h.insertFMDData)
	r.Put("/update_fmd_data", h.updateFMDData)
	r.Delete("/delete_fmd_data", h.deleteFMDData)
	r.Get("/get_all_fmd_data", h.getAllFMDData)
	r.Get("/get_latest_fmd_data", h.getLatestFMDData)
	r.Get("/get_filtered_fmd_data", h.getFilteredFMDData)

	// ── Purchases ─────────────────────────────────────────────────────────────
	r.Post("/insert_purchase", h.insertPurchase)
	r.Put("/update_purchase", h.updatePurchase)
	r.Get("/get_all_purchases", h.getAllPurchases)
	r.Get("/get_latest_purchases", h.getLatestPurchases)
	r.Get("/get_purchased_tags_for_item", h.getPurchasedTagsForItem)
	r.Get("/get_po_number_by_tag", h.getPONumberByTag)
	r.Get("/get_next_item_tag_sequence", h.getNextItemTagSequence)

	// ── Stock grading ─────────────────────────────────────────────────────────
	r.Post("/insert_stock_update", h.insertStockUpdate)
	r.Put("/update_stock_update", h.updateStockUpdate)
	r.Get("/get_all_stock_updates", h.getAllStockUpdates)
	r.Get("/get_latest_stock_updates", h.getLatestStockUpdates)
	r.Get("/get_stock_update_total_for_date", h.getStockUpdateTotalForDate)

	// ── Sales flows ───────────────────────────────────────────────────────────
	r.Post("/insert_sale", h.insertSale)
	r.Put("/update_sale", h.updateSale)
	r.Get("/get_all_sales", h.getAllSales)
	r.Get("/get_latest_sales", h.getLatestSales)
	r.Post("/insert_b_grade_sale", h.insertBGradeSale)
	r.Put("/update_b_grade_sale", h.updateBGradeSale)
	r.Get("/get_all_b_grade_sales", h.getAllBGradeSales)
	r.Get("/get_latest_b_grade_sales", h.getLatestBGradeSales)
	r.Post("/insert_dump_sale", h.insertDumpSale)
	r.Put("/update_dump_sale", h.updateDumpSale)
	r.Get("/get_all_dump_sales", h.getAllDumpSales)
	r.Get("/get_latest_dump_sales", h.getLatestDumpSales)
	r.Post("/insert_mandi_resale", h.insertMandiResale)
	r.Put("/update_mandi_resale", h.updateMandiResale)
	r.Get("/get_all_mandi_resales", h.getAllMandiResales)
	r.Get("/get_latest_mandi_resales", h.getLatestMandiResales)
	r.Post("/insert_sale_to_waitlist", h.insertSaleToWaitlist)
	r.Get("/get_waitlisted_sales", h.getWaitlistedSales)
	r.Delete("/delete_waitlisted_sale", h.deleteWaitlistedSale)

	// ── Rejections ────────────────────────────────────────────────────────────
	r.Post("/insert_rejection_received", h.insertRejectionReceived)
	r.Put("/update_rejection_received", h.updateRejectionReceived)
	r.Get("/get_all_rejection_received", h.getAllRejectionReceived)
	r.Get("/get_latest_rejection_received", h.getLatestRejectionReceived)
	r.Post("/insert_vendor_rejection", h.insertVendorRejection)
	r.Put("/update_vendor_rejection", h.updateVendorRejection)
	r.Get("/get_all_vendor_rejections", h.getAllVendorRejections)
	r.Get("/get_latest_vendor_rejections", h.getLatestVendorRejections)

	// ── Payments and cross-cutting ────────────────────────────────────────────
	r.Put("/update_payment_status", h.updatePaymentStatus)
	r.Post("/add_payment_history_record", h.addPaymentHistoryRecord)
	r.Get("/get_payment_history", h.getPaymentHistory)
	r.Delete("/delete_multiple_entries", h.deleteMultipleEntries)
	r.Get("/get_single_value", h.getSingleValue)

	h.router = r
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
