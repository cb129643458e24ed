package web

import (
	"net/http"

	"freshtrade/internal/core"
)

func logisticsFilterFromQuery(r *http.Request) core.LogisticsFilter {
	q := r.URL.Query()
	return core.LogisticsFilter{
		DriverName:    q.Get("driver_name"),
		VehicleNumber: q.Get("vehicle_number"),
		Location:      q.Get("location"),
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		PaymentStatus: q.Get("payment_status"),
	}
}

func (h *Handler) insertLMDData(w http.ResponseWriter, r *http.Request) {
	var rec core.LMDRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	id, err := h.svc.Logistics.InsertLMD(r.Context(), rec)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateLMDData(w http.ResponseWriter, r *http.Request) {
	var rec core.LMDRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	if err := h.svc.Logistics.UpdateLMD(r.Context(), rec); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) deleteLMDData(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Logistics.DeleteLMD(r.Context(), req.ID); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllLMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.AllLMD(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

func (h *Handler) getLatestLMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.LatestLMD(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

func (h *Handler) getFilteredLMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.FilteredLMD(r.Context(), logisticsFilterFromQuery(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

func (h *Handler) insertFMDData(w http.ResponseWriter, r *http.Request) {
	var rec core.FMDRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	id, err := h.svc.Logistics.InsertFMD(r.Context(), rec)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) updateFMDData(w http.ResponseWriter, r *http.Request) {
	var rec core.FMDRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	if err := h.svc.Logistics.UpdateFMD(r.Context(), rec); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) deleteFMDData(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Logistics.DeleteFMD(r.Context(), req.ID); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) getAllFMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.AllFMD(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

func (h *Handler) getLatestFMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.LatestFMD(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

func (h *Handler) getFilteredFMDData(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Logistics.FilteredFMD(r.Context(), logisticsFilterFromQuery(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}
