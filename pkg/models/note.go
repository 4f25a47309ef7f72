package models

import (
	"strings"
	"time"

	"github.com/sqids/sqids-go"
)

type Note struct {
	ID         string    `firestore:"id"`
	OwnerID    string    `firestore:"owner_id"`
	Title      string    `firestore:"title"`
	Content    string    `firestore:"content"`
	Category   Category  `firestore:"category"`
	Tags       []string  `firestore:"tags,omitempty"`
	Summary    string    `firestore:"summary,omitempty"`
	IsFavorite bool      `firestore:"is_favorite"`
	CreatedAt  time.Time `firestore:"created_at"`
	UpdatedAt  time.Time `firestore:"updated_at"`
}

// NewNote builds an unsaved note. The store fills in the owner and the
// timestamps at persistence time.
func NewNote(title, content string, category Category, tags []string, summary string) *Note {
	s, _ := sqids.New()
	id, _ := s.Encode([]uint64{uint64(time.Now().UnixNano())})

	return &Note{
		ID:       id,
		Title:    title,
		Content:  content,
		Category: category,
		Tags:     NormalizeTags(tags),
		Summary:  summary,
	}
}

// NormalizeTags ensures every tag carries the # prefix. It is idempotent:
// already-prefixed tags pass through unchanged, so re-normalizing never
// doubles the prefix. Order and duplicates are preserved.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		normalized = append(normalized, tag)
	}
	return normalized
}

// ParseTags splits manually entered comma-separated tags, trims each entry,
// drops empty ones and prefixes with # where absent.
func ParseTags(input string) []string {
	return NormalizeTags(strings.Split(input, ","))
}

// MatchesSearch reports whether the note matches a case-insensitive
// substring search across title, content, summary and tags.
func (n *Note) MatchesSearch(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(n.Title), query) ||
		strings.Contains(strings.ToLower(n.Content), query) ||
		strings.Contains(strings.ToLower(n.Summary), query) {
		return true
	}

	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// CreatedOn reports whether the note was created on the given local
// calendar day. The comparison uses local date components on both sides,
// so a note written late at night matches the day the user saw it.
func (n *Note) CreatedOn(day time.Time) bool {
	return DayKey(n.CreatedAt) == DayKey(day)
}

// DayKey renders a timestamp as a local-calendar-day string (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
