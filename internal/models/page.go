package models

// TweetPage is the paginated envelope for the global feed. CurrentPage always
// echoes the requested page, even when it is past the end of the result set.
type TweetPage struct {
	TotalItems  int64    `json:"total_items"`
	TotalPages  int      `json:"total_pages"`
	CurrentPage int      `json:"current_page"`
	Items       []*Tweet `json:"items"`
}

// UserPage is the paginated envelope for username search results.
type UserPage struct {
	TotalItems  int64         `json:"total_items"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
	Items       []UserSummary `json:"items"`
}

// PageCount computes the number of pages needed for total items at the given
// page size.
func PageCount(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
