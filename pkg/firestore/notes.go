package firestore

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"noteflow/pkg/models"
)

func notesPath(owner string) string {
	return fmt.Sprintf("%s/%s/%s", pathUsers, owner, pathNotes)
}

func notePath(owner, id string) string {
	return fmt.Sprintf("%s/%s/%s/%s", pathUsers, owner, pathNotes, id)
}

// CreateNote inserts the note for the current owner. The store stamps
// creation and update times and forces the favorite flag off; the stored
// note is returned.
func (fs *Firestore) CreateNote(note *models.Note) (*models.Note, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note.OwnerID = owner
	note.IsFavorite = false
	note.CreatedAt = now
	note.UpdatedAt = now

	if err = create(fs.ctx, fs.client, notePath(owner, note.ID), note); err != nil {
		return nil, err
	}

	return note, nil
}

func (fs *Firestore) Note(id string) (*models.Note, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	return get[models.Note](fs.ctx, fs.client, notePath(owner, id))
}

// Notes returns one page of the owner's notes plus the total match count.
// The category filter is skipped for CategoryAll; the tag filter matches
// notes whose tag list contains the given tag.
func (fs *Firestore) Notes(opts models.ListOptions) (*models.NotePage, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	path := notesPath(owner)
	filter := listFilter(opts)

	total, err := count(fs.ctx, fs.client, QueryCriteria{
		Path:   path,
		Filter: filter,
		Select: []string{fieldID},
	})
	if err != nil {
		return nil, err
	}

	direction := firestore.Desc
	if opts.SortOrder == models.SortAscending {
		direction = firestore.Asc
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = models.SortByCreatedAt
	}

	notes, err := query[models.Note](fs.ctx, fs.client, QueryCriteria{
		Path:   path,
		Filter: filter,
		OrderBy: []OrderBy{
			{
				Field:     sortBy,
				Direction: direction,
			},
		},
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &models.NotePage{
		Notes:   notes,
		Total:   total,
		HasMore: total > opts.Offset+opts.Limit,
	}, nil
}

// UpdateNote replaces the given fields and stamps updated_at. Identifiers
// are never part of an update.
func (fs *Firestore) UpdateNote(id string, fields map[string]any) error {
	owner, err := fs.owner()
	if err != nil {
		return err
	}

	delete(fields, fieldID)
	delete(fields, fieldOwnerID)
	fields[fieldUpdatedAt] = time.Now()

	return update(fs.ctx, fs.client, notePath(owner, id), fields)
}

func (fs *Firestore) DeleteNote(id string) error {
	owner, err := fs.owner()
	if err != nil {
		return err
	}

	return remove(fs.ctx, fs.client, notePath(owner, id))
}

func (fs *Firestore) SetNoteFavorite(id string, favorite bool) error {
	owner, err := fs.owner()
	if err != nil {
		return err
	}

	return update(fs.ctx, fs.client, notePath(owner, id), map[string]any{
		fieldFavorite:  favorite,
		fieldUpdatedAt: time.Now(),
	})
}

// CountByCategory returns the owner's note counts for every category in
// the taxonomy; categories without notes report zero.
func (fs *Firestore) CountByCategory() (*models.CategoryCounts, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	notes, err := query[models.Note](fs.ctx, fs.client, QueryCriteria{
		Path:   notesPath(owner),
		Select: []string{fieldCategory},
	})
	if err != nil {
		return nil, err
	}

	return aggregateCategories(notes), nil
}

// CountByDate returns note counts per local calendar day for the given
// month. The month boundary is built from local year/month; the range
// filter runs against the stored timestamps.
func (fs *Firestore) CountByDate(year int, month time.Month) (map[string]int, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	notes, err := query[models.Note](fs.ctx, fs.client, QueryCriteria{
		Path: notesPath(owner),
		Filter: firestore.AndFilter{
			Filters: []firestore.EntityFilter{
				firestore.PropertyFilter{
					Path:     fieldCreatedAt,
					Operator: ">=",
					Value:    start,
				},
				firestore.PropertyFilter{
					Path:     fieldCreatedAt,
					Operator: "<",
					Value:    end,
				},
			},
		},
		Select: []string{fieldCreatedAt},
	})
	if err != nil {
		return nil, err
	}

	return aggregateDays(notes), nil
}

// AllTags flattens every note's tags, deduplicates and sorts them.
func (fs *Firestore) AllTags() ([]string, error) {
	owner, err := fs.owner()
	if err != nil {
		return nil, err
	}

	notes, err := query[models.Note](fs.ctx, fs.client, QueryCriteria{
		Path:   notesPath(owner),
		Select: []string{fieldTags},
	})
	if err != nil {
		return nil, err
	}

	return collectTags(notes), nil
}

func listFilter(opts models.ListOptions) firestore.EntityFilter {
	filters := make([]firestore.EntityFilter, 0, 2)

	if opts.Category != "" && opts.Category != models.CategoryAll {
		filters = append(filters, firestore.PropertyFilter{
			Path:     fieldCategory,
			Operator: "==",
			Value:    string(opts.Category),
		})
	}

	if opts.Tag != "" {
		filters = append(filters, firestore.PropertyFilter{
			Path:     fieldTags,
			Operator: "array-contains",
			Value:    opts.Tag,
		})
	}

	switch len(filters) {
	case 0:
		return nil
	case 1:
		return filters[0]
	default:
		return firestore.AndFilter{Filters: filters}
	}
}

func aggregateCategories(notes []*models.Note) *models.CategoryCounts {
	counts := &models.CategoryCounts{
		All:        len(notes),
		ByCategory: make(map[models.Category]int, len(models.Categories())),
	}

	for _, c := range models.Categories() {
		counts.ByCategory[c] = 0
	}

	for _, n := range notes {
		counts.ByCategory[models.ParseCategory(string(n.Category))]++
	}

	return counts
}

func aggregateDays(notes []*models.Note) map[string]int {
	days := make(map[string]int)
	for _, n := range notes {
		days[models.DayKey(n.CreatedAt)]++
	}
	return days
}

func collectTags(notes []*models.Note) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, n := range notes {
		for _, tag := range n.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	sort.Strings(tags)
	return tags
}
