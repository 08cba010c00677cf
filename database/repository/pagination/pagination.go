package pagination

import "math"

const MinPage = 1
const MaxLimit = 100
const DefaultLimit = 20

// Pagination is one page of T plus the metadata needed to walk the rest.
// NextPage and PreviousPage are omitted at the edges.
type Pagination[T any] struct {
	Data         []T   `json:"data"`
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	pSize := paginate.Limit
	if pSize <= 0 {
		pSize = DefaultLimit
	}

	if data == nil {
		data = make([]T, 0)
	}

	result := Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Total:      paginate.NumItems,
		PageSize:   pSize,
		TotalPages: int(math.Ceil(float64(paginate.NumItems) / float64(pSize))),
	}

	if result.Page < result.TotalPages {
		next := result.Page + 1
		result.NextPage = &next
	}

	if result.Page > 1 && result.Page <= result.TotalPages {
		prev := result.Page - 1
		result.PreviousPage = &prev
	}

	return &result
}

// HydratePagination maps a page of S into a page of D keeping the metadata.
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mapped := make([]D, len(source.Data))

	for i, item := range source.Data {
		mapped[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:         mapped,
		Total:        source.Total,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
