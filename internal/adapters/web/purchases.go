package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func (h *Handler) insertPurchase(w http.ResponseWriter, r *http.Request) {
	var p core.Purchase
	if !decodeBody(w, r, &p) {
		return
	}
	id, err := h.svc.Purchases.Insert(r.Context(), p)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	var p core.Purchase
	if !decodeBody(w, r, &p) {
		return
	}
	if err := h.svc.Purchases.Update(r.Context(), p); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllPurchases(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Purchases.All(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestPurchases(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Purchases.Latest(r.Context(), parseLimit(r, 5))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getPurchasedTagsForItem(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item_name")
	if item == "" {
		badRequest(w, r, "item_name is required")
		return
	}
	tags, err := h.svc.Purchases.TagsForItem(r.Context(), item)
	h.writeNames(w, r, tags, err)
}

func (h *Handler) getPONumberByTag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	item, tag := q.Get("item_name"), q.Get("tag")
	if item == "" || tag == "" {
		badRequest(w, r, "item_name and tag are required")
		return
	}
	num, err := h.svc.Purchases.PONumberByTag(r.Context(), item, tag)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]*string{"po_number": num})
}

func (h *Handler) getNextItemTagSequence(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prefix, dayPart := q.Get("vendor_prefix"), q.Get("day_part")
	if prefix == "" || dayPart == "" {
		badRequest(w, r, "vendor_prefix and day_part are required")
		return
	}
	n, err := h.svc.Purchases.NextTagSequence(r.Context(), prefix, dayPart)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int{"sequence": n})
}
