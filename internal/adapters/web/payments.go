package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"freshtrade/internal/core"
)

type paymentStatusRequest struct {
	TableName     string          `json:"table_name"`
	ID            int64           `json:"id"`
	Status        string          `json:"status"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	ModeOfPayment *string         `json:"mode_of_payment"`
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entity, err := core.ParsePaymentEntity(req.TableName)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	u := core.PaymentStatusUpdate{
		Entity:        entity,
		ID:            req.ID,
		Status:        req.Status,
		AmountPaid:    req.AmountPaid,
		AmountDue:     req.AmountDue,
		ModeOfPayment: req.ModeOfPayment,
	}
	if err := h.svc.Payments.UpdateStatus(r.Context(), u); err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) addPaymentHistoryRecord(w http.ResponseWriter, r *http.Request) {
	var rec core.PaymentRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	id, err := h.svc.Payments.AddRecord(r.Context(), rec)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"id": id})
}

func (h *Handler) getPaymentHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entity, err := core.ParsePaymentEntity(q.Get("table_name"))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	parentID, ok := parseID(q.Get("parent_id"))
	if !ok {
		badRequest(w, r, "parent_id must be an integer")
		return
	}
	recs, err := h.svc.Payments.History(r.Context(), entity, parentID)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, recs)
}

type deleteEntriesRequest struct {
	TableName string  `json:"table_name"`
	IDs       []int64 `json:"ids"`
}

func (h *Handler) deleteMultipleEntries(w http.ResponseWriter, r *http.Request) {
	var req deleteEntriesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	n, err := h.svc.Payments.DeleteEntries(r.Context(), req.TableName, req.IDs)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"deleted": n})
}

func (h *Handler) getSingleValue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	metric := q.Get("metric")
	params, err := core.MetricParams(metric)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	args := make([]string, 0, len(params))
	for _, p := range params {
		v := q.Get(p)
		if v == "" {
			badRequest(w, r, p+" is required")
			return
		}
		args = append(args, v)
	}
	sum, err := h.svc.Payments.SumMetric(r.Context(), metric, args)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]decimal.Decimal{"total": sum})
}
