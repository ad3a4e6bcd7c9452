package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"youmatter.app/server/core/db/sqlc"
	"youmatter.app/server/internal/model"
)

type periodStore struct {
	queries *sqlc.Queries
}

func newPeriodStore(queries *sqlc.Queries) PeriodStore {
	return &periodStore{queries: queries}
}

func (s *periodStore) Upsert(ctx context.Context, entry *model.PeriodEntry) error {
	row, err := s.queries.UpsertPeriodEntry(ctx, sqlc.UpsertPeriodEntryParams{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Severity:  entry.Severity,
		Notes:     entry.Notes,
		EntryDate: pgtype.Date{Time: entry.EntryDate, Valid: true},
	})
	if err != nil {
		return err
	}
	*entry = toPeriodModel(row)
	return nil
}

func (s *periodStore) ListByUser(ctx context.Context, userID int64) ([]model.PeriodEntry, error) {
	rows, err := s.queries.ListPeriodEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.PeriodEntry, len(rows))
	for i, row := range rows {
		entries[i] = toPeriodModel(row)
	}
	return entries, nil
}

func toPeriodModel(row sqlc.PeriodEntry) model.PeriodEntry {
	return model.PeriodEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		Severity:  row.Severity,
		Notes:     row.Notes,
		EntryDate: row.EntryDate.Time,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
