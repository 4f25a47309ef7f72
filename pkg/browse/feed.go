package browse

import (
	"time"

	"noteflow/pkg/log"
	"noteflow/pkg/models"
	"noteflow/pkg/notify"
)

// Store is the slice of the record store the browsing side reads from and
// mutates through.
type Store interface {
	Notes(opts models.ListOptions) (*models.NotePage, error)
	UpdateNote(id string, fields map[string]any) error
	DeleteNote(id string) error
	SetNoteFavorite(id string, favorite bool) error
	CountByCategory() (*models.CategoryCounts, error)
	CountByDate(year int, month time.Month) (map[string]int, error)
	AllTags() ([]string, error)
}

// Feed produces the visible note sequence for the current filter state.
// Category, tag and sort run server-side over offset windows; favorite is
// intersected into the accumulated list at fetch time; search and date are
// applied freshly on every read and never affect pagination math, which is
// always driven by the server-side total and offset.
type Feed struct {
	store    Store
	notifier notify.Notifier
	pageSize int

	filter  models.FilterState
	notes   []*models.Note
	page    int
	total   int
	hasMore bool
}

func NewFeed(store Store, notifier notify.Notifier, pageSize int) *Feed {
	return &Feed{
		store:    store,
		notifier: notifier,
		pageSize: pageSize,
		filter:   models.DefaultFilterState(),
		notes:    make([]*models.Note, 0),
	}
}

func (f *Feed) Filter() models.FilterState {
	return f.filter
}

func (f *Feed) SetFilter(filter models.FilterState) {
	f.filter = filter
}

// Refresh replaces the accumulated list with the first page.
func (f *Feed) Refresh() error {
	page, err := f.fetch(0)
	if err != nil {
		f.notes = f.notes[:0]
		f.total = 0
		f.hasMore = false
		return err
	}

	f.notes = page.Notes
	f.page = 0
	f.total = page.Total
	f.hasMore = page.HasMore
	return nil
}

// LoadMore appends the next window to the accumulated list and advances
// the offset by one page.
func (f *Feed) LoadMore() error {
	next := f.page + 1

	page, err := f.fetch(next)
	if err != nil {
		return err
	}

	f.notes = append(f.notes, page.Notes...)
	f.page = next
	f.hasMore = page.HasMore
	return nil
}

func (f *Feed) fetch(page int) (*models.NotePage, error) {
	result, err := f.store.Notes(models.ListOptions{
		Category:  f.filter.Category,
		Tag:       f.filter.Tag,
		SortBy:    f.filter.SortBy,
		SortOrder: f.filter.SortOrder,
		Limit:     f.pageSize,
		Offset:    page * f.pageSize,
	})
	if err != nil {
		return nil, err
	}

	// favorite is pre-intersected into the accumulated list; search and
	// date stay out of it so they recompute per read
	if f.filter.FavoriteOnly {
		favorites := make([]*models.Note, 0, len(result.Notes))
		for _, n := range result.Notes {
			if n.IsFavorite {
				favorites = append(favorites, n)
			}
		}
		result.Notes = favorites
	}

	return result, nil
}

// Visible applies the search and date filters to the loaded window. The
// count it yields reflects loaded notes, not the full remote total.
func (f *Feed) Visible() []*models.Note {
	visible := make([]*models.Note, 0, len(f.notes))
	for _, n := range f.notes {
		if !n.MatchesSearch(f.filter.SearchQuery) {
			continue
		}
		if f.filter.SelectedDate != nil && !n.CreatedOn(*f.filter.SelectedDate) {
			continue
		}
		visible = append(visible, n)
	}
	return visible
}

func (f *Feed) Loaded() int {
	return len(f.notes)
}

func (f *Feed) Total() int {
	return f.total
}

func (f *Feed) HasMore() bool {
	return f.hasMore
}

// Delete removes the note remotely, then reflects the removal locally.
// On failure the accumulated list is left untouched.
func (f *Feed) Delete(id string) error {
	logger := log.Logger()

	if err := f.store.DeleteNote(id); err != nil {
		logger.Errorf("error deleting note %s, %s", id, err)
		f.notifier.Notify(notify.KindError, "메모 삭제 중 오류가 발생했습니다")
		return err
	}

	kept := make([]*models.Note, 0, len(f.notes))
	for _, n := range f.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.notes = kept
	f.total--

	f.notifier.Notify(notify.KindSuccess, "메모가 삭제되었습니다")
	return nil
}

// ToggleFavorite flips the note's favorite flag remotely, then reflects
// the flip locally exactly once. Write-through ordering: nothing changes
// locally until the store confirms.
func (f *Feed) ToggleFavorite(id string) error {
	logger := log.Logger()

	var target *models.Note
	for _, n := range f.notes {
		if n.ID == id {
			target = n
			break
		}
	}
	if target == nil {
		return models.ErrNotFound
	}

	next := !target.IsFavorite
	if err := f.store.SetNoteFavorite(id, next); err != nil {
		logger.Errorf("error toggling favorite on %s, %s", id, err)
		f.notifier.Notify(notify.KindError, "즐겨찾기 변경 중 오류가 발생했습니다")
		return err
	}

	target.IsFavorite = next
	return nil
}
