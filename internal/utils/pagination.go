package utils

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageParams is a normalized page request. Values are always positive.
type PageParams struct {
	Page  int
	Limit int
}

// ParsePage normalizes raw query values. Anything missing, non-numeric or
// non-positive falls back to the defaults rather than erroring.
func ParsePage(pageStr, limitStr string) PageParams {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return PageParams{Page: page, Limit: limit}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes one page of a larger result set.
type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPageMeta(p PageParams, total int64) PageMeta {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return PageMeta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
