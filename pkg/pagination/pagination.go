package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params holds normalized paging values.
type Params struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps the limit.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the page count for a total row count.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
