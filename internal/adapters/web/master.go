package web

import (
	"net/http"
)

type nameRequest struct {
	Name string `json:"name"`
}

type vendorRequest struct {
	Name     string   `json:"name"`
	Location *string  `json:"location"`
	Km       *float64 `json:"km"`
}

func (h *Handler) insertItem(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Masters.AddItem(r.Context(), req.Name); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) insertProductManager(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Masters.AddProductManager(r.Context(), req.Name); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) insertPurchaseVendor(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Masters.AddPurchaseVendor(r.Context(), req.Name); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) insertVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Masters.UpsertVendor(r.Context(), req.Name, req.Location, req.Km); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) writeNames(w http.ResponseWriter, r *http.Request, names []string, err error) {
	if err != nil {
		serviceError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, names)
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Masters.Items(r.Context())
	h.writeNames(w, r, names, err)
}

func (h *Handler) getProductManagers(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Masters.ProductManagers(r.Context())
	h.writeNames(w, r, names, err)
}

func (h *Handler) getPurchaseVendors(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Masters.PurchaseVendors(r.Context())
	h.writeNames(w, r, names, err)
}

func (h *Handler) getVendors(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Masters.VendorNames(r.Context())
	h.writeNames(w, r, names, err)
}

func (h *Handler) getVendorsWithDetails(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.svc.Masters.VendorsWithDetails(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, vendors)
}

func (h *Handler) getBGradeClients(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Masters.BGradeClients(r.Context())
	h.writeNames(w, r, names, err)
}

func (h *Handler) getPurchasedItems(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Purchases.PurchasedItems(r.Context())
	h.writeNames(w, r, names, err)
}
