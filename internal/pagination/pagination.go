package pagination

import "strconv"

// Page is the page/per_page pair parsed from query parameters.
type Page struct {
	Number  int
	PerPage int
}

// Parse reads page/per_page strings, falling back to 1/10 on absent or
// invalid values.
func Parse(pageStr, perPageStr string) Page {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		perPage = 10
	}
	return Page{Number: page, PerPage: perPage}
}

// TotalPages is ceil(total / perPage).
func TotalPages(total int64, perPage int) int64 {
	if perPage <= 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

// Offset is the zero-based record offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Bounds clips the page window to n records. Pages past the end yield an
// empty window, not an error.
func (p Page) Bounds(n int) (start, end int) {
	start = p.Offset()
	if start > n {
		start = n
	}
	end = start + p.PerPage
	if end > n {
		end = n
	}
	return start, end
}
