package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"youmatter.app/server/core/db/sqlc"
	"youmatter.app/server/internal/model"
)

type waterStore struct {
	queries *sqlc.Queries
}

func newWaterStore(queries *sqlc.Queries) WaterStore {
	return &waterStore{queries: queries}
}

func (s *waterStore) Upsert(ctx context.Context, entry *model.WaterEntry) error {
	row, err := s.queries.UpsertWaterEntry(ctx, sqlc.UpsertWaterEntryParams{
		ID:           entry.ID,
		UserID:       entry.UserID,
		GlassesCount: entry.GlassesCount,
		EntryDate:    pgtype.Date{Time: entry.EntryDate, Valid: true},
	})
	if err != nil {
		return err
	}
	*entry = toWaterModel(row)
	return nil
}

func (s *waterStore) ListByUser(ctx context.Context, userID int64) ([]model.WaterEntry, error) {
	rows, err := s.queries.ListWaterEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.WaterEntry, len(rows))
	for i, row := range rows {
		entries[i] = toWaterModel(row)
	}
	return entries, nil
}

func toWaterModel(row sqlc.WaterEntry) model.WaterEntry {
	return model.WaterEntry{
		ID:           row.ID,
		UserID:       row.UserID,
		GlassesCount: row.GlassesCount,
		EntryDate:    row.EntryDate.Time,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
