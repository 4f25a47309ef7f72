package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"noteflow/pkg/models"
)

// storeErrorf tags a backend failure with the store error sentinel so
// callers can classify it with errors.Is.
func storeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w, %s", models.ErrStore, fmt.Sprintf(format, args...))
}

type QueryCriteria struct {
	Path    string
	Filter  firestore.EntityFilter
	OrderBy []OrderBy
	Limit   int
	Offset  int
	Select  []string
}

type OrderBy struct {
	Field     string
	Direction firestore.Direction
}

func create[T any](ctx context.Context, client *firestore.Client, documentPath string, t *T) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return storeErrorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Create(ctx, t); err != nil {
		return storeErrorf("error creating document, %s", err)
	}

	return nil
}

func get[T any](ctx context.Context, client *firestore.Client, documentPath string) (*T, error) {
	dr := client.Doc(documentPath)
	if dr == nil {
		return nil, storeErrorf("invalid document path, %s", documentPath)
	}

	ds, err := dr.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, storeErrorf("error getting document, %s", err)
	}

	t := new(T)
	if err = ds.DataTo(t); err != nil {
		return nil, storeErrorf("error decoding document, %s", err)
	}

	return t, nil
}

func set[T any](ctx context.Context, client *firestore.Client, documentPath string, t *T) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return storeErrorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Set(ctx, t); err != nil {
		return storeErrorf("error setting document contents, %s", err)
	}

	return nil
}

func update(ctx context.Context, client *firestore.Client, documentPath string, fields map[string]any) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return storeErrorf("invalid document path, %s", documentPath)
	}

	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	_, err := dr.Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return models.ErrNotFound
	}
	if err != nil {
		return storeErrorf("error updating document, %s", err)
	}

	return nil
}

func remove(ctx context.Context, client *firestore.Client, documentPath string) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return storeErrorf("invalid document path, %s", documentPath)
	}

	// Delete is a no-op for missing documents, so check existence first to
	// keep the not-found contract.
	if _, err := get[map[string]any](ctx, client, documentPath); err != nil {
		return err
	}

	if _, err := dr.Delete(ctx); err != nil {
		return storeErrorf("error deleting document, %s", err)
	}

	return nil
}

func buildQuery(cr *firestore.CollectionRef, criteria QueryCriteria) firestore.Query {
	q := cr.Query
	if criteria.Filter != nil {
		q = q.WhereEntity(criteria.Filter)
	}

	for _, o := range criteria.OrderBy {
		q = q.OrderBy(o.Field, o.Direction)
	}

	if len(criteria.Select) > 0 {
		q = q.Select(criteria.Select...)
	}

	if criteria.Offset > 0 {
		q = q.Offset(criteria.Offset)
	}

	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	return q
}

func query[T any](ctx context.Context, client *firestore.Client, criteria QueryCriteria) ([]*T, error) {
	cr := client.Collection(criteria.Path)
	if cr == nil {
		return nil, storeErrorf("invalid collection path, %s", criteria.Path)
	}

	iter := buildQuery(cr, criteria).Documents(ctx)
	ds, err := iter.GetAll()
	if err != nil {
		return nil, storeErrorf("error querying documents, %s", err)
	}

	documents := make([]*T, 0, len(ds))
	for _, d := range ds {
		t := new(T)
		if err = d.DataTo(t); err != nil {
			return nil, storeErrorf("error decoding document, %s", err)
		}
		documents = append(documents, t)
	}

	return documents, nil
}

// count walks the matching documents instead of pulling them whole; the
// criteria's Select keeps the payload to a single field.
func count(ctx context.Context, client *firestore.Client, criteria QueryCriteria) (int, error) {
	cr := client.Collection(criteria.Path)
	if cr == nil {
		return 0, storeErrorf("invalid collection path, %s", criteria.Path)
	}

	criteria.Limit = 0
	criteria.Offset = 0
	iter := buildQuery(cr, criteria).Documents(ctx)

	c := 0
	for {
		_, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, storeErrorf("error counting documents, %s", err)
		}
		c++
	}

	return c, nil
}
