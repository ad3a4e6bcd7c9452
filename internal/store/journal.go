package store

import (
	"context"

	"youmatter.app/server/core/db/sqlc"
	"youmatter.app/server/internal/model"
)

type journalStore struct {
	queries *sqlc.Queries
}

func newJournalStore(queries *sqlc.Queries) JournalStore {
	return &journalStore{queries: queries}
}

func (s *journalStore) Create(ctx context.Context, entry *model.JournalEntry) error {
	row, err := s.queries.CreateJournalEntry(ctx, sqlc.CreateJournalEntryParams{
		ID:      entry.ID,
		UserID:  entry.UserID,
		Title:   entry.Title,
		Content: entry.Content,
	})
	if err != nil {
		return err
	}
	*entry = toJournalModel(row)
	return nil
}

func (s *journalStore) ListByUser(ctx context.Context, userID int64) ([]model.JournalEntry, error) {
	rows, err := s.queries.ListJournalEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.JournalEntry, len(rows))
	for i, row := range rows {
		entries[i] = toJournalModel(row)
	}
	return entries, nil
}

func toJournalModel(row sqlc.JournalEntry) model.JournalEntry {
	return model.JournalEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.Time,
	}
}
