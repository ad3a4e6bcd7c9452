package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"youmatter.app/server/core/db/sqlc"
	"youmatter.app/server/internal/model"
)

type moodStore struct {
	queries *sqlc.Queries
}

func newMoodStore(queries *sqlc.Queries) MoodStore {
	return &moodStore{queries: queries}
}

func (s *moodStore) Upsert(ctx context.Context, entry *model.MoodEntry) error {
	row, err := s.queries.UpsertMoodEntry(ctx, sqlc.UpsertMoodEntryParams{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Mood:      entry.Mood,
		Notes:     entry.Notes,
		EntryDate: pgtype.Date{Time: entry.EntryDate, Valid: true},
	})
	if err != nil {
		return err
	}
	*entry = toMoodModel(row)
	return nil
}

func (s *moodStore) ListByUser(ctx context.Context, userID int64) ([]model.MoodEntry, error) {
	rows, err := s.queries.ListMoodEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.MoodEntry, len(rows))
	for i, row := range rows {
		entries[i] = toMoodModel(row)
	}
	return entries, nil
}

func toMoodModel(row sqlc.MoodEntry) model.MoodEntry {
	return model.MoodEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		Mood:      row.Mood,
		Notes:     row.Notes,
		EntryDate: row.EntryDate.Time,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
