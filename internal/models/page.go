package models

import (
	"net/url"
	"strconv"
)

// Page is the backend's paginated collection shape.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PageParams selects a page of a collection. Zero values are omitted from
// the query string and fall back to the backend defaults (first page).
type PageParams struct {
	Page int
	Size int
	Sort string
}

// Query renders the parameters as URL query values.
func (p PageParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}
