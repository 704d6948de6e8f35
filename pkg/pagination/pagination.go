// Package pagination translates a logical page request into offset/limit
// values for a backing query and a compact, UI-ready page-number sequence
// with gap markers. Invalid input is clamped, never rejected: every call
// produces a usable result.
package pagination

import "strings"

// Order directions after normalization. Anything that is not "desc"
// (case-insensitive) normalizes to Asc.
const (
	Asc  = "asc"
	Desc = "desc"
)

const defaultOrderBy = "id"

// fullWindow is the largest page count rendered without gap markers.
const fullWindow = 5

// PageEntry is one element of the page-number sequence: either a real page
// number or a gap marker displayed as an ellipsis. The tagged form keeps
// markers distinguishable from page numbers without sentinel integers.
type PageEntry struct {
	Number int  `json:"number,omitempty"`
	Gap    bool `json:"gap,omitempty"`
}

func pageNo(n int) PageEntry { return PageEntry{Number: n} }

// GapMarker returns the sequence entry representing an elided page range.
func GapMarker() PageEntry { return PageEntry{Gap: true} }

// Metadata bundles everything a client needs to render pagination controls.
type Metadata struct {
	Page        int         `json:"page"`
	PageSize    int         `json:"page_size"`
	TotalCount  int         `json:"total_count"`
	TotalPages  int         `json:"total_pages"`
	ShowingFrom int         `json:"showing_from"`
	ShowingTo   int         `json:"showing_to"`
	Pages       []PageEntry `json:"pages"`
	OrderBy     string      `json:"order_by"`
	OrderDir    string      `json:"order_dir"`
}

// Paginator is a pure calculator over one page request. Create one per
// query, read the derived values, discard it; instances hold no identity
// beyond their configuration.
type Paginator struct {
	page     int
	pageSize int
	total    int
	orderBy  string
	orderDir string
}

// New builds a paginator in one call. All inputs go through the same
// clamping and normalization as the individual setters.
func New(page, pageSize, total int, orderBy, orderDir string) *Paginator {
	p := &Paginator{}
	p.SetPage(page)
	p.SetPageSize(pageSize)
	p.SetTotal(total)
	p.SetOrderBy(orderBy)
	p.SetOrderDir(orderDir)
	return p
}

// SetPage clamps the requested page to at least 1.
func (p *Paginator) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	p.page = n
}

// SetPageSize clamps the page size to at least 1.
func (p *Paginator) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	p.pageSize = n
}

// SetTotal clamps the total item count to at least 0. The count typically
// comes from a separate counting query.
func (p *Paginator) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
}

// SetOrderBy trims and lowercases the order field, defaulting to "id".
func (p *Paginator) SetOrderBy(field string) {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		f = defaultOrderBy
	}
	p.orderBy = f
}

// SetOrderDir normalizes the direction: only a case-insensitive "desc"
// yields Desc, everything else yields Asc.
func (p *Paginator) SetOrderDir(dir string) {
	if strings.EqualFold(strings.TrimSpace(dir), Desc) {
		p.orderDir = Desc
		return
	}
	p.orderDir = Asc
}

func (p *Paginator) Page() int        { return p.page }
func (p *Paginator) PageSize() int    { return p.pageSize }
func (p *Paginator) Total() int       { return p.total }
func (p *Paginator) OrderBy() string  { return p.orderBy }
func (p *Paginator) OrderDir() string { return p.orderDir }

// Skip is the number of items a backing query must offset past.
func (p *Paginator) Skip() int { return (p.page - 1) * p.pageSize }

// Take is the query limit for one page.
func (p *Paginator) Take() int { return p.pageSize }

// TotalPages is ceil(total/pageSize), 0 when there are no items.
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// ShowingFrom is the 1-based index of the first item on the page, 0 when
// the result set is empty.
func (p *Paginator) ShowingFrom() int {
	return min((p.page-1)*p.pageSize+1, p.total)
}

// ShowingTo is the 1-based index of the last item on the page, 0 when the
// result set is empty.
func (p *Paginator) ShowingTo() int {
	return min(p.page*p.pageSize, p.total)
}

// Pages produces the display sequence. Up to fullWindow pages it lists every
// page; beyond that it keeps the first two, a window around the current page
// and the last two, separated by gap markers where pages are elided. Output
// preserves insertion order, deduplicates page numbers (first occurrence
// wins) and drops numbers outside [1, TotalPages]; gap markers always pass
// through the filter.
func (p *Paginator) Pages() []PageEntry {
	totalPages := p.TotalPages()
	if totalPages == 0 {
		return []PageEntry{}
	}
	if totalPages <= fullWindow {
		out := make([]PageEntry, 0, totalPages)
		for n := 1; n <= totalPages; n++ {
			out = append(out, pageNo(n))
		}
		return out
	}

	cur := p.page
	raw := []PageEntry{pageNo(1), pageNo(2)}
	if cur > 3 {
		raw = append(raw, GapMarker())
	}
	if cur > 2 {
		raw = append(raw, pageNo(cur-1))
	}
	raw = append(raw, pageNo(cur))
	if cur < totalPages {
		raw = append(raw, pageNo(cur+1))
	}
	if cur < totalPages-2 {
		raw = append(raw, GapMarker())
	}
	raw = append(raw, pageNo(totalPages-1), pageNo(totalPages))

	seen := make(map[int]bool, len(raw))
	out := make([]PageEntry, 0, len(raw))
	for _, e := range raw {
		if e.Gap {
			out = append(out, e)
			continue
		}
		if e.Number < 1 || e.Number > totalPages || seen[e.Number] {
			continue
		}
		seen[e.Number] = true
		out = append(out, e)
	}
	return out
}

// Metadata computes the full pagination bundle for one request.
func (p *Paginator) Metadata() Metadata {
	return Metadata{
		Page:        p.page,
		PageSize:    p.pageSize,
		TotalCount:  p.total,
		TotalPages:  p.TotalPages(),
		ShowingFrom: p.ShowingFrom(),
		ShowingTo:   p.ShowingTo(),
		Pages:       p.Pages(),
		OrderBy:     p.orderBy,
		OrderDir:    p.orderDir,
	}
}
