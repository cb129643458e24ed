package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func (h *Handler) insertStockUpdate(w http.ResponseWriter, r *http.Request) {
	var u core.StockUpdate
	if !decodeBody(w, r, &u) {
		return
	}
	id, err := h.svc.Stock.Insert(r.Context(), u)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateStockUpdate(w http.ResponseWriter, r *http.Request) {
	var u core.StockUpdate
	if !decodeBody(w, r, &u) {
		return
	}
	if err := h.svc.Stock.Update(r.Context(), u); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllStockUpdates(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Stock.All(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestStockUpdates(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Stock.Latest(r.Context(), parseLimit(r, 5))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getStockUpdateTotalForDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	item, date := q.Get("item"), q.Get("chosen_date")
	if item == "" || date == "" {
		badRequest(w, r, "item and chosen_date are required")
		return
	}
	total, err := h.svc.Stock.TotalForDate(r.Context(), item, date)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]float64{"total": total})
}
