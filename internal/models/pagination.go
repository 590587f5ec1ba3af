package models

// PaginatedResponse is the envelope for all list operations. Page is 1-based.
// A page past the end of the result set yields an empty Data slice with the
// totals still filled in.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items for the given page and builds the envelope.
// TotalPages is ceil(total/pageSize).
func Paginate[T any](items []T, page, pageSize int) *PaginatedResponse[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return &PaginatedResponse[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ClampPageArgs normalizes page and pageSize to their documented defaults:
// page >= 1, pageSize in [1,100] defaulting to 20.
func ClampPageArgs(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
