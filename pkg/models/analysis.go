package models

import "strings"

// FallbackTag is the single tag a degraded analysis carries.
const FallbackTag = "#메모"

const fallbackTitleLength = 20

// AnalysisResult is the classifier's answer for one piece of captured text.
// It is never persisted as-is; a Note is built from it once the user
// confirms. Err is set when classification degraded to the fallback
// structure instead of a real answer.
type AnalysisResult struct {
	Category     Category
	CategoryName string
	Tags         []string
	Title        string
	Summary      string
	Err          string
}

// Degraded reports whether this result came from the classification
// failure fallback rather than the service.
func (r *AnalysisResult) Degraded() bool {
	return r.Err != ""
}

// FallbackResult is the degraded analysis used when classification cannot
// produce a real answer: fallback category and tag, the text itself as a
// truncated title, and the failure description.
func FallbackResult(text string, cause error) *AnalysisResult {
	return &AnalysisResult{
		Category:     CategoryOther,
		CategoryName: CategoryOther.Meta().Label,
		Tags:         []string{FallbackTag},
		Title:        fallbackTitle(text),
		Err:          cause.Error(),
	}
}

func fallbackTitle(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= fallbackTitleLength {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:fallbackTitleLength])) + "..."
}
