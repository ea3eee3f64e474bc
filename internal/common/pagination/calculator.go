package pagination

import "math"

// CalculateSkip returns the number of records to skip for a 1-based page.
// A window that lies past math.MaxInt is clamped to math.MaxInt so the
// store sees an empty page rather than a wrapped negative offset.
//
//   - Page 1, Limit 10 -> 0
//   - Page 3, Limit 10 -> 20
func CalculateSkip(pageNo, pageLimit int) int {
	if pageNo <= 1 || pageLimit <= 0 {
		return 0
	}
	if pageNo-1 > math.MaxInt/pageLimit {
		return math.MaxInt
	}
	return pageLimit * (pageNo - 1)
}

// CalculateTotalPages uses ceiling division and reports at least one page.
func CalculateTotalPages(total int64, pageLimit int) int {
	if total <= 0 || pageLimit <= 0 {
		return 1
	}
	pages := total / int64(pageLimit)
	if total%int64(pageLimit) != 0 {
		pages++
	}
	return int(pages)
}
