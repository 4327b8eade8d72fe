package store

import (
	"context"
	"fmt"

	"github.com/jcmontoya/omnilearn/ent"
	"github.com/jcmontoya/omnilearn/ent/courselibrary"
)

// courseLibraryRepo implements CourseLibraryRepo using the ent client.
type courseLibraryRepo struct {
	client *ent.Client
}

func (r *courseLibraryRepo) SaveBlob(ctx context.Context, payload []byte) error {
	_, err := r.client.CourseLibrary.Create().
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save course library: %w", err)
	}
	return nil
}

func (r *courseLibraryRepo) LatestBlob(ctx context.Context) ([]byte, error) {
	row, err := r.client.CourseLibrary.Query().
		Order(ent.Desc(courselibrary.FieldSavedAt), ent.Desc(courselibrary.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest course library: %w", err)
	}
	return row.Payload, nil
}

func (r *courseLibraryRepo) Prune(ctx context.Context, keep int) error {
	// Find the ID threshold: get the Nth most recent row.
	rows, err := r.client.CourseLibrary.Query().
		Order(ent.Desc(courselibrary.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query course library for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep rows exist
	}

	_, err = r.client.CourseLibrary.Delete().
		Where(courselibrary.IDLTE(rows[0].ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune course library: %w", err)
	}
	return nil
}

func (r *courseLibraryRepo) DeleteAll(ctx context.Context) error {
	_, err := r.client.CourseLibrary.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete course library: %w", err)
	}
	return nil
}
