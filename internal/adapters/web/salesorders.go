package web

import (
	"net/http"

	"freshtrade/internal/core"
)

type insertSORequest struct {
	SOData    core.SalesOrderInput `json:"so_data"`
	ItemsData []core.SOItemInput   `json:"items_data"`
}

func (h *Handler) insertGeneratedSO(w http.ResponseWriter, r *http.Request) {
	var req insertSORequest
	if !decodeBody(w, r, &req) {
		return
	}
	soID, err := h.svc.SalesOrders.Create(r.Context(), req.SOData, req.ItemsData)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]int64{"so_id": soID})
}

func (h *Handler) getLatestGeneratedSOsWithItems(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SalesOrders.LatestWithItems(r.Context(), parseLimit(r, 10))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, rows)
}

func (h *Handler) getAllGeneratedSOsWithItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := core.SalesOrderFilter{
		SONumber:   q.Get("so_number"),
		ItemName:   q.Get("item_name"),
		ClientName: q.Get("client_name"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
	rows, err := h.svc.SalesOrders.ListWithItems(r.Context(), f)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, rows)
}

func (h *Handler) getAvailableSOsForSale(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SalesOrders.AvailableForSale(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeList(w, rows)
}

func (h *Handler) getLastSONumber(w http.ResponseWriter, r *http.Request) {
	num, err := h.svc.SalesOrders.LastSONumber(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]*string{"so_number": num})
}
