package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"youmatter.app/server/core/db/sqlc"
	"youmatter.app/server/internal/model"
)

type feelingStore struct {
	queries *sqlc.Queries
}

func newFeelingStore(queries *sqlc.Queries) FeelingStore {
	return &feelingStore{queries: queries}
}

func (s *feelingStore) Create(ctx context.Context, log *model.FeelingLog) error {
	row, err := s.queries.CreateFeelingLog(ctx, sqlc.CreateFeelingLogParams{
		ID:           log.ID,
		UserID:       log.UserID,
		FeelingEmoji: log.FeelingEmoji,
		Notes:        log.Notes,
		LoggedAt:     pgtype.Timestamptz{Time: log.LoggedAt, Valid: true},
	})
	if err != nil {
		return err
	}
	*log = toFeelingModel(row)
	return nil
}

func (s *feelingStore) ListByUser(ctx context.Context, userID int64) ([]model.FeelingLog, error) {
	rows, err := s.queries.ListFeelingLogsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs := make([]model.FeelingLog, len(rows))
	for i, row := range rows {
		logs[i] = toFeelingModel(row)
	}
	return logs, nil
}

func toFeelingModel(row sqlc.FeelingLog) model.FeelingLog {
	return model.FeelingLog{
		ID:           row.ID,
		UserID:       row.UserID,
		FeelingEmoji: row.FeelingEmoji,
		Notes:        row.Notes,
		LoggedAt:     row.LoggedAt.Time,
		CreatedAt:    row.CreatedAt.Time,
	}
}
