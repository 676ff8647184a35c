package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// PerPagePolicy is the per-endpoint perPage default and upper bound. Max 0 means unbounded.
type PerPagePolicy struct {
	Default int
	Max     int
}

var (
	GoodsPolicy      = PerPagePolicy{Default: 12, Max: 50}
	CategoriesPolicy = PerPagePolicy{Default: 10}
	FeedbacksPolicy  = PerPagePolicy{Default: 3}
)

type Page struct {
	Page    int
	PerPage int
}

func ParseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func ParsePage(values url.Values, policy PerPagePolicy) Page {
	return NewPage(
		ParseIntDefault(values.Get("page"), 1),
		ParseIntDefault(values.Get("perPage"), policy.Default),
		policy,
	)
}

func NewPage(page, perPage int, policy PerPagePolicy) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if policy.Max > 0 && perPage > policy.Max {
		perPage = policy.Max
	}
	// Offset is (page-1)*perPage and must stay representable.
	if limit := math.MaxInt / perPage; page-1 > limit {
		page = limit + 1
	}
	return Page{Page: page, PerPage: perPage}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Page) Limit() int {
	return p.PerPage
}

func (p Page) TotalPages(total int64) int {
	return TotalPages(total, p.PerPage)
}

// TotalPages never returns zero, so an empty result still reads as "page 1 of 1".
func TotalPages(total int64, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Result is a counted window: Total over the full predicate, Items for the requested page.
type Result[T any] struct {
	Total int64
	Items []T
}
