package models

import "time"

const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByTitle     = "title"
)

const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// FilterState is the set of concurrently active view filters. Category,
// tag and sort are applied server-side; search, favorite and date are
// applied to the fetched window client-side.
type FilterState struct {
	Category     Category
	Tag          string
	SearchQuery  string
	FavoriteOnly bool
	SelectedDate *time.Time
	SortBy       string
	SortOrder    string
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category:  CategoryAll,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDescending,
	}
}
