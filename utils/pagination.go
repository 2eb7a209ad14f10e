package utils

import (
	"net/http"
	"strconv"
)

const QuestionsPerPage = 10

// PageFromRequest reads ?page=N, falling back to 1 when absent or not an
// integer.
func PageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the 1-indexed page of items. Pages below 1 or past the
// end are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
