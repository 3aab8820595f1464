package views

import "bookkeeper/internal/domain"

// RowPager holds the visible tree rows, the selected row and the page of
// rows that fits the terminal. The page always starts at a multiple of the
// page size, so it is derived from the cursor.
type RowPager struct {
	rows     []*domain.Node
	cursor   int
	pageSize int
}

// NewRowPager creates an empty pager showing pageSize rows at a time
func NewRowPager(pageSize int) *RowPager {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &RowPager{pageSize: pageSize}
}

// SetRows replaces the rows. The selected category stays selected while it
// is still visible; otherwise the cursor keeps its row number.
func (p *RowPager) SetRows(rows []*domain.Node) {
	selected := p.Selected()
	p.rows = rows
	if selected != nil && p.Select(selected.ID) {
		return
	}
	p.moveTo(p.cursor)
}

// Len returns the number of visible rows
func (p *RowPager) Len() int {
	return len(p.rows)
}

// Selected returns the row under the cursor, nil when there are no rows
func (p *RowPager) Selected() *domain.Node {
	if p.cursor < len(p.rows) {
		return p.rows[p.cursor]
	}
	return nil
}

// Select moves the cursor to the row of id and reports whether it is visible
func (p *RowPager) Select(id domain.Key) bool {
	for i, n := range p.rows {
		if n.ID == id {
			p.cursor = i
			return true
		}
	}
	return false
}

// Cursor returns the selected row number
func (p *RowPager) Cursor() int {
	return p.cursor
}

func (p *RowPager) Up() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

func (p *RowPager) Down() bool {
	if p.cursor >= len(p.rows)-1 {
		return false
	}
	p.cursor++
	return true
}

// NextPage selects the first row of the next page
func (p *RowPager) NextPage() bool {
	next := p.offset() + p.pageSize
	if next >= len(p.rows) {
		return false
	}
	p.cursor = next
	return true
}

// PrevPage selects the first row of the previous page
func (p *RowPager) PrevPage() bool {
	if p.offset() == 0 {
		return false
	}
	p.cursor = p.offset() - p.pageSize
	return true
}

// SetPageSize changes how many rows fit on a page
func (p *RowPager) SetPageSize(size int) {
	p.pageSize = max(size, 1)
}

// Page returns the rows on the current page and the row number of the first
func (p *RowPager) Page() (int, []*domain.Node) {
	start := p.offset()
	end := min(start+p.pageSize, len(p.rows))
	return start, p.rows[start:end]
}

// CurrentPage is 1-based
func (p *RowPager) CurrentPage() int {
	return p.offset()/p.pageSize + 1
}

func (p *RowPager) TotalPages() int {
	if len(p.rows) == 0 {
		return 1
	}
	return (len(p.rows) + p.pageSize - 1) / p.pageSize
}

func (p *RowPager) offset() int {
	return (p.cursor / p.pageSize) * p.pageSize
}

func (p *RowPager) moveTo(row int) {
	p.cursor = max(min(row, len(p.rows)-1), 0)
}
