package browse

import (
	"strings"
	"time"

	"noteflow/pkg/log"
	"noteflow/pkg/models"
	"noteflow/pkg/notify"
)

// View ties the selection state to re-fetch triggers. Every server-side
// filter change resets the window to offset zero; the search query only
// narrows the already-loaded window and never re-fetches.
type View struct {
	store    Store
	notifier notify.Notifier
	feed     *Feed

	refreshes int
}

func NewView(store Store, notifier notify.Notifier, pageSize int) *View {
	return &View{
		store:    store,
		notifier: notifier,
		feed:     NewFeed(store, notifier, pageSize),
	}
}

func (v *View) Feed() *Feed {
	return v.feed
}

// Notes is the visible sequence under every active filter.
func (v *View) Notes() []*models.Note {
	return v.feed.Visible()
}

// NoteSaved is the refresh signal; the orchestrator fires it after every
// successful save.
func (v *View) NoteSaved() {
	v.refreshes++
	v.reload()
}

// SelectCategory switches the category filter and clears the tag filter,
// which only makes sense within the previous category selection.
func (v *View) SelectCategory(category models.Category) {
	filter := v.feed.Filter()
	filter.Category = category
	filter.Tag = ""
	v.feed.SetFilter(filter)
	v.reload()
}

func (v *View) SelectTag(tag string) {
	filter := v.feed.Filter()
	filter.Tag = tag
	v.feed.SetFilter(filter)
	v.reload()
}

// Search narrows the loaded window client-side; the displayed match count
// reflects loaded notes, not the full remote total.
func (v *View) Search(query string) {
	filter := v.feed.Filter()
	filter.SearchQuery = query
	v.feed.SetFilter(filter)
}

func (v *View) SelectDate(day *time.Time) {
	filter := v.feed.Filter()
	filter.SelectedDate = day
	v.feed.SetFilter(filter)
	v.reload()
}

func (v *View) ToggleFavoriteFilter() {
	filter := v.feed.Filter()
	filter.FavoriteOnly = !filter.FavoriteOnly
	v.feed.SetFilter(filter)
	v.reload()
}

func (v *View) SortBy(sortBy string) {
	filter := v.feed.Filter()
	filter.SortBy = sortBy
	v.feed.SetFilter(filter)
	v.reload()
}

func (v *View) LoadMore() error {
	return v.feed.LoadMore()
}

func (v *View) Delete(id string) error {
	return v.feed.Delete(id)
}

func (v *View) ToggleFavorite(id string) error {
	return v.feed.ToggleFavorite(id)
}

// Edit replaces the note's editable fields, stamps the update remotely,
// then re-fetches so the window reflects the stored row. Blank content or
// title rejects the edit before any store call; notes are never persisted
// without either.
func (v *View) Edit(id, title, content string, category models.Category, tags []string, summary string) error {
	logger := log.Logger()

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if content == "" {
		v.notifier.Notify(notify.KindWarning, "메모 내용을 입력해주세요")
		return models.ErrEmptyContent
	}

	if title == "" {
		v.notifier.Notify(notify.KindWarning, "제목을 입력해주세요")
		return models.ErrEmptyTitle
	}

	err := v.store.UpdateNote(id, map[string]any{
		"title":    title,
		"content":  content,
		"category": string(models.ParseCategory(string(category))),
		"tags":     models.NormalizeTags(tags),
		"summary":  strings.TrimSpace(summary),
	})
	if err != nil {
		logger.Errorf("error updating note %s, %s", id, err)
		v.notifier.Notify(notify.KindError, "메모 수정 중 오류가 발생했습니다")
		return err
	}

	v.notifier.Notify(notify.KindSuccess, "메모가 수정되었습니다")
	v.NoteSaved()
	return nil
}

// CategoryCounts feeds the sidebar: totals for "all" and every category.
func (v *View) CategoryCounts() (*models.CategoryCounts, error) {
	return v.store.CountByCategory()
}

// Tags feeds the sidebar tag list.
func (v *View) Tags() ([]string, error) {
	return v.store.AllTags()
}

// CalendarCounts feeds the calendar filter with per-day counts for a month.
func (v *View) CalendarCounts(year int, month time.Month) (map[string]int, error) {
	return v.store.CountByDate(year, month)
}

// Refreshes counts saved-signal triggers; each one invalidated the window.
func (v *View) Refreshes() int {
	return v.refreshes
}

func (v *View) reload() {
	logger := log.Logger()

	if err := v.feed.Refresh(); err != nil {
		logger.Errorf("error loading notes, %s", err)
	}
}
