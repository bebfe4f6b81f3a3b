package query

import "strconv"

// MaxLimit bounds the page size a client can request.
const MaxLimit = 100

// Page is a resolved page/limit pair. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

// ParsePage parses raw query parameters, falling back to page 1 and
// defaultLimit when a value is missing, non-numeric or not positive.
func ParsePage(rawPage, rawLimit string, defaultLimit int) Page {
	page := parsePositive(rawPage, 1)
	limit := parsePositive(rawLimit, defaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata returned alongside a page of rows.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Paginate pairs p with the total row count under the same predicate.
func (p Page) Paginate(total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages returns ceil(total / limit); zero rows means zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
