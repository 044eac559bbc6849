package dto

import (
	"net/http"
	"strings"

	"rentals/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type SortParams struct {
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates SortParams from the HTTP request, defaulting to
// ascending order when sort_dir is absent or unrecognised.
func (q *SortParams) FromRequest(r *http.Request) {
	sortDir := strings.ToUpper(r.URL.Query().Get(constant.RequestParamSortDir))

	switch sortDir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = sortDir
	default:
		q.SortDir = constant.DefaultValueSortDir
	}
}
