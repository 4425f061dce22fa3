package generator

// Paging constants baked into the generated runtime script. The dedicated
// blog page paginates by nine posts; the index page shows a teaser of the
// five most recent only.
const (
	BlogPageSize     = 9
	IndexTeaserLimit = 5
)

// Pagination models the client-side paging state the generated script
// maintains over the filtered post set. It exists in Go so the arithmetic
// the script embeds is specified and tested here, not only inside emitted
// JavaScript.
type Pagination struct {
	Total    int // number of posts after filtering
	PageSize int
	Page     int // 1-based current page
}

// NewPagination returns paging state for total posts, clamped to page 1.
func NewPagination(total int) Pagination {
	return Pagination{Total: total, PageSize: BlogPageSize, Page: 1}
}

// PageCount returns the number of pages; an empty set still has one page.
func (p Pagination) PageCount() int {
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Clamp returns a copy with Page forced into [1, PageCount]. The runtime
// applies the same correction after the filtered set shrinks.
func (p Pagination) Clamp() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if max := p.PageCount(); p.Page > max {
		p.Page = max
	}
	return p
}

// Bounds returns the half-open [start, end) slice of the current page.
func (p Pagination) Bounds() (start, end int) {
	p = p.Clamp()
	start = (p.Page - 1) * p.PageSize
	end = start + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	if start > p.Total {
		start = p.Total
	}
	return start, end
}

// HasPrev reports whether the previous-page control is enabled.
func (p Pagination) HasPrev() bool { return p.Clamp().Page > 1 }

// HasNext reports whether the next-page control is enabled.
func (p Pagination) HasNext() bool { return p.Clamp().Page < p.PageCount() }
