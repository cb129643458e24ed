package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func (h *Handler) insertGeneratedPO(w http.ResponseWriter, r *http.Request) {
	var po core.PurchaseOrder
	if !decodeBody(w, r, &po) {
		return
	}
	id, err := h.svc.PurchaseOrders.Create(r.Context(), po)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) getLatestGeneratedPOs(w http.ResponseWriter, r *http.Request) {
	pos, err := h.svc.PurchaseOrders.Latest(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, pos)
}

func (h *Handler) getAllGeneratedPOs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := core.PurchaseOrderFilter{
		PONumber:   q.Get("po_number"),
		ItemName:   q.Get("item_name"),
		VendorName: q.Get("vendor_name"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
	pos, err := h.svc.PurchaseOrders.List(r.Context(), f)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, pos)
}

func (h *Handler) getAvailablePOsForPurchase(w http.ResponseWriter, r *http.Request) {
	pos, err := h.svc.PurchaseOrders.AvailableForPurchase(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, pos)
}

func (h *Handler) getLastPONumber(w http.ResponseWriter, r *http.Request) {
	num, err := h.svc.PurchaseOrders.LastPONumber(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]*string{"po_number": num})
}
