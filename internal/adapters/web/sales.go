package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func (h *Handler) insertSale(w http.ResponseWriter, r *http.Request) {
	var v core.Sale
	if !decodeBody(w, r, &v) {
		return
	}
	id, err := h.svc.Sales.InsertSale(r.Context(), v)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	var v core.Sale
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.svc.Sales.UpdateSale(r.Context(), v); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.AllSales(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.LatestSales(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) insertBGradeSale(w http.ResponseWriter, r *http.Request) {
	var v core.BGradeSale
	if !decodeBody(w, r, &v) {
		return
	}
	id, err := h.svc.Sales.InsertBGradeSale(r.Context(), v)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateBGradeSale(w http.ResponseWriter, r *http.Request) {
	var v core.BGradeSale
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.svc.Sales.UpdateBGradeSale(r.Context(), v); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllBGradeSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.AllBGradeSales(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestBGradeSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.LatestBGradeSales(r.Context(), parseLimit(r, 5))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) insertDumpSale(w http.ResponseWriter, r *http.Request) {
	var v core.DumpSale
	if !decodeBody(w, r, &v) {
		return
	}
	id, err := h.svc.Sales.InsertDumpSale(r.Context(), v)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateDumpSale(w http.ResponseWriter, r *http.Request) {
	var v core.DumpSale
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.svc.Sales.UpdateDumpSale(r.Context(), v); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllDumpSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.AllDumpSales(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestDumpSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.LatestDumpSales(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) insertMandiResale(w http.ResponseWriter, r *http.Request) {
	var v core.MandiResale
	if !decodeBody(w, r, &v) {
		return
	}
	id, err := h.svc.Sales.InsertMandiResale(r.Context(), v)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateMandiResale(w http.ResponseWriter, r *http.Request) {
	var v core.MandiResale
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.svc.Sales.UpdateMandiResale(r.Context(), v); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllMandiResales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.AllMandiResales(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestMandiResales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.LatestMandiResales(r.Context(), parseLimit(r, 5))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) insertSaleToWaitlist(w http.ResponseWriter, r *http.Request) {
	var v core.WaitlistEntry
	if !decodeBody(w, r, &v) {
		return
	}
	id, err := h.svc.Sales.AddToWaitlist(r.Context(), v)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) getWaitlistedSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sales.Waitlisted(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) deleteWaitlistedSale(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Sales.DeleteWaitlisted(r.Context(), req.ID); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}
