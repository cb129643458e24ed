package web

import (
	"net/http"
	"strconv"
)

// writeList writes a JSON array response, encoding an empty list as [] rather
// than null.
func writeList[T any](w http.ResponseWriter, list []T) {
	if list == nil {
		list = []T{}
	}
	writeJSON(w, list)
}

// parseLimit reads the limit query parameter, falling back to def when the
// parameter is absent or not a positive integer.
func parseLimit(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// parseID parses a decimal row id from a query parameter.
func parseID(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// idRequest is the body of the single-row delete endpoints.
type idRequest struct {
	ID int64 `json:"id"`
}
