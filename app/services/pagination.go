package services

import "github.com/Ostashev/hw05-final/app/models"

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Page is one slice of an ordered post sequence plus its metadata.
type Page struct {
	Items       []*models.Post `json:"items"`
	Number      int            `json:"number"`
	TotalItems  int            `json:"total_items"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// Paginate slices posts into fixed-size pages and returns the requested
// one. The page number is clamped to [1, totalPages]; asking for a page
// past the end returns the last page, never an error. An empty input
// yields a single empty page.
func Paginate(posts []*models.Post, pageSize, number int) *Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	totalPages := (len(posts) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	if start > len(posts) {
		start = len(posts)
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}

	return &Page{
		Items:       posts[start:end],
		Number:      number,
		TotalItems:  len(posts),
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
