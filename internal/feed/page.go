package feed

// RowsAll disables pagination: one unbounded page.
const RowsAll = 0

// RowsPerPageOptions are the page sizes the dashboard offers.
var RowsPerPageOptions = []int{5, 10, 25, RowsAll}

// Slice returns the [start, end) bounds of the visible rows for a zero-based
// page index. A page index past the data yields an empty slice at the end.
func Slice(total, page, rowsPerPage int) (int, int) {
	if rowsPerPage <= 0 {
		return 0, total
	}
	// Checked by division so an absurd page index cannot overflow the
	// multiplication into negative bounds.
	if page > total/rowsPerPage {
		return total, total
	}
	start := page * rowsPerPage
	end := start + rowsPerPage
	if end > total {
		end = total
	}
	return start, end
}

// EmptyRows is the padding row count for a short final page. The first page
// is never padded, nor is an unbounded page.
func EmptyRows(total, page, rowsPerPage int) int {
	if rowsPerPage <= 0 || page <= 0 {
		return 0
	}
	start, end := Slice(total, page, rowsPerPage)
	if visible := end - start; visible < rowsPerPage {
		return rowsPerPage - visible
	}
	return 0
}
