package relevance

// Pagination describes one page of a fixed-size listing.
type Pagination struct {
	Page       int // 1-based current page
	PageSize   int
	Total      int // total items across all pages
	TotalPages int
	Skip       int // items to skip before this page
}

// Paginate computes the slice window for the given page. Pages below 1
// clamp to 1; a page past the end yields a window beyond the total,
// which slices to empty rather than erroring.
func Paginate(total, page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Skip:       (page - 1) * pageSize,
	}
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a further page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number, clamped to 1.
func (p Pagination) PrevPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, clamped to the last page.
func (p Pagination) NextPage() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Window clamps the pagination's [Skip, Skip+PageSize) range to a slice
// of the given length. Use it to cut the current page out of a sorted
// slice: start, end := pg.Window(len(posts)); posts[start:end].
func (p Pagination) Window(length int) (start, end int) {
	start = p.Skip
	if start > length {
		start = length
	}
	end = start + p.PageSize
	if end > length {
		end = length
	}
	return start, end
}
