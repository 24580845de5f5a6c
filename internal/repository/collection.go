package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

// collection wraps the typed read/write helpers shared by every record repository.
type collection[T any] struct {
	client *firestore.Client
	name   string
}

func (c collection[T]) ref(id string) *firestore.DocumentRef {
	return c.client.Collection(c.name).Doc(id)
}

// all drains a query into a slice. fix is called with each decoded item and its document ID.
func (c collection[T]) all(iter *firestore.DocumentIterator, fix func(*T, string)) ([]T, error) {
	defer iter.Stop()
	out := []T{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate %s: %w", c.name, err)
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", c.name, doc.Ref.ID, err)
		}
		if fix != nil {
			fix(&item, doc.Ref.ID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (c collection[T]) get(ctx context.Context, id string) (T, error) {
	var item T
	snap, err := c.ref(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return item, fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
		}
		return item, fmt.Errorf("get %s %s: %w", c.name, id, err)
	}
	if err := snap.DataTo(&item); err != nil {
		return item, fmt.Errorf("decode %s %s: %w", c.name, id, err)
	}
	return item, nil
}

func (c collection[T]) set(ctx context.Context, id string, item T) error {
	if _, err := c.ref(id).Set(ctx, item); err != nil {
		return fmt.Errorf("write %s %s: %w", c.name, id, err)
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	if _, err := c.ref(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
		}
		return fmt.Errorf("delete %s %s: %w", c.name, id, err)
	}
	return nil
}
