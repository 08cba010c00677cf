package paginate

import (
	"net/url"
	"strconv"

	"github.com/Matias-sh/mi-portafolio/database/repository/pagination"
)

// MakeFrom reads ?page= and ?limit=, clamping both to the allowed range.
func MakeFrom(values url.Values) pagination.Paginate {
	page := pagination.MinPage
	pageSize := pagination.DefaultLimit

	if values.Get("page") != "" {
		if tPage, err := strconv.Atoi(values.Get("page")); err == nil {
			page = tPage
		}
	}

	if values.Get("limit") != "" {
		if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
			pageSize = limit
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if pageSize > pagination.MaxLimit {
		pageSize = pagination.MaxLimit
	}

	if pageSize < 1 {
		pageSize = pagination.DefaultLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: pageSize,
	}
}
