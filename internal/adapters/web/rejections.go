package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func (h *Handler) insertRejectionReceived(w http.ResponseWriter, r *http.Request) {
	var rec core.RejectionReceived
	if !decodeBody(w, r, &rec) {
		return
	}
	id, err := h.svc.Rejections.InsertReceived(r.Context(), rec)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateRejectionReceived(w http.ResponseWriter, r *http.Request) {
	var rec core.RejectionReceived
	if !decodeBody(w, r, &rec) {
		return
	}
	if err := h.svc.Rejections.UpdateReceived(r.Context(), rec); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllRejectionReceived(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Rejections.AllReceived(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestRejectionReceived(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Rejections.LatestReceived(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) insertVendorRejection(w http.ResponseWriter, r *http.Request) {
	var rec core.VendorRejection
	if !decodeBody(w, r, &rec) {
		return
	}
	id, err := h.svc.Rejections.InsertVendorRejection(r.Context(), rec)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateVendorRejection(w http.ResponseWriter, r *http.Request) {
	var rec core.VendorRejection
	if !decodeBody(w, r, &rec) {
		return
	}
	if err := h.svc.Rejections.UpdateVendorRejection(r.Context(), rec); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllVendorRejections(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Rejections.AllVendorRejections(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}

func (h *Handler) getLatestVendorRejections(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Rejections.LatestVendorRejections(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, list)
}
