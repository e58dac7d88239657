package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// decodeJSON binds the request body to dst. Unknown fields are rejected so
// write endpoints only ever accept fields declared on their input schema.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// parsePagination reads 1-indexed page and limit query parameters with the
// defaults page=1, limit=10. Malformed or non-positive values fall back to
// the defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}
