package models

// ListOptions selects one page of notes. Category, tag and ordering are
// applied by the store; Offset/Limit window the result.
type ListOptions struct {
	Category  Category
	Tag       string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// NotePage is one fetched window plus the total match count across all
// pages. HasMore holds total > offset+limit.
type NotePage struct {
	Notes   []*Note
	Total   int
	HasMore bool
}

// CategoryCounts holds per-category note counts plus the overall total.
type CategoryCounts struct {
	All        int
	ByCategory map[Category]int
}
