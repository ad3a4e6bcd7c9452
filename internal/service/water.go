package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"youmatter.app/server/common/id"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/store"
)

type WaterService interface {
	Log(ctx context.Context, userID int64, glasses int32, date time.Time) (*model.WaterEntry, error)
	List(ctx context.Context, userID int64) ([]model.WaterEntry, error)
}

type waterService struct {
	waterStore store.WaterStore
}

func NewWaterService(waterStore store.WaterStore) WaterService {
	return &waterService{waterStore: waterStore}
}

func (s *waterService) Log(ctx context.Context, userID int64, glasses int32, date time.Time) (*model.WaterEntry, error) {
	if glasses < 0 {
		return nil, fmt.Errorf("%w: glasses count cannot be negative", ErrInvalidInput)
	}

	entry := &model.WaterEntry{
		ID:           id.New(),
		UserID:       userID,
		GlassesCount: glasses,
		EntryDate:    entryDay(date),
	}
	if err := s.waterStore.Upsert(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to upsert water entry",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("upserting water entry: %w", err)
	}
	return entry, nil
}

func (s *waterService) List(ctx context.Context, userID int64) ([]model.WaterEntry, error) {
	entries, err := s.waterStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing water entries: %w", err)
	}
	return entries, nil
}
