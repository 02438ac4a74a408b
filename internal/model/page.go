package model

import "strings"

const (
	// DefaultPageSize applies when no or a non-positive size is requested.
	DefaultPageSize = 10
	// MaxPageSize caps every requested size.
	MaxPageSize = 100
)

// PageRequest describes one page of an ordered result set.
type PageRequest struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// NewPageRequest clamps page and size into their valid ranges.
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

// WithSort parses a "field[,asc|desc]" expression. Fields missing from allowed
// leave the request sorted by id.
func (p PageRequest) WithSort(expr string, allowed map[string]string) PageRequest {
	p.Sort, p.Desc = "", false
	if expr == "" {
		return p
	}
	parts := strings.Split(expr, ",")
	if column, ok := allowed[strings.TrimSpace(parts[0])]; ok {
		p.Sort = column
	}
	if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		p.Desc = true
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// OrderBy renders the ORDER BY clause, defaulting to the id column.
func (p PageRequest) OrderBy() string {
	column := p.Sort
	if column == "" {
		column = "id"
	}
	if p.Desc {
		return column + " desc"
	}
	return column + " asc"
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items            []T   `json:"content"`
	PageNumber       int   `json:"number"`
	PageSize         int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
}

// NewPage assembles a page from the fetched items and the overall total.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:            items,
		PageNumber:       req.Page,
		PageSize:         req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(items),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
	}
}

// MapPage converts the items of a page while keeping its metadata.
func MapPage[T, R any](p Page[T], fn func(*T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, fn(&p.Items[i]))
	}
	return Page[R]{
		Items:            items,
		PageNumber:       p.PageNumber,
		PageSize:         p.PageSize,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		NumberOfElements: len(items),
		First:            p.First,
		Last:             p.Last,
	}
}
