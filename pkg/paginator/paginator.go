// Package paginator converts page/limit requests into storage offsets and
// assembles paginated result envelopes.
package paginator

// Params is the page/limit pair requested by a client. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// OffsetLimit is the storage-level window derived from Params.
type OffsetLimit struct {
	Offset int
	Limit  int
}

// Result is one page of T plus the numbers a client needs to walk the rest.
type Result[T any] struct {
	Data       []T
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// Normalize applies caller policy: non-positive values fall back to page 1 and
// defaultLimit, and limit is capped at maxLimit when maxLimit > 0.
func (p Params) Normalize(defaultLimit, maxLimit int) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit <= 0 {
		p.Limit = 1
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// ToOffsetLimit is defined for every integer input: limit and page are
// clamped to at least 1, so the offset is never negative.
func ToOffsetLimit(p Params) OffsetLimit {
	limit := max(p.Limit, 1)
	page := max(p.Page, 1)
	return OffsetLimit{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
}

// BuildResult wraps data. TotalPages is ceil(total/limit), and 0 whenever
// total or limit is not positive.
func BuildResult[T any](data []T, total int64, page, limit int) Result[T] {
	return Result[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	}
}

func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
