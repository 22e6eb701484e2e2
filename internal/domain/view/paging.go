// Package view holds pure, render-side derivations: page slicing of
// already-fetched result sets and the award preview formula. Nothing in
// here is persisted; values are recomputed on every request.
package view

// Page is a one-page view over a full result set.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate returns the contiguous slice [(page-1)*pageSize, page*pageSize)
// of items, clamped to the slice bounds. Page numbers are 1-based; a page
// past the end yields an empty slice, never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for count items.
// An empty result set still renders as one (empty) page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageOf slices items and wraps the result with its paging metadata.
func PageOf[T any](items []T, page, pageSize int) Page[T] {
	return Page[T]{
		Items:      Paginate(items, page, pageSize),
		PageNumber: page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(items), pageSize),
		TotalItems: len(items),
	}
}
