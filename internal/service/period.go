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

// Valid period severities, mirroring the client's options.
var periodSeverities = map[string]bool{
	"none":   true,
	"light":  true,
	"medium": true,
	"heavy":  true,
}

type PeriodService interface {
	Log(ctx context.Context, userID int64, severity string, notes *string, date time.Time) (*model.PeriodEntry, error)
	List(ctx context.Context, userID int64) ([]model.PeriodEntry, error)
}

type periodService struct {
	periodStore store.PeriodStore
}

func NewPeriodService(periodStore store.PeriodStore) PeriodService {
	return &periodService{periodStore: periodStore}
}

func (s *periodService) Log(ctx context.Context, userID int64, severity string, notes *string, date time.Time) (*model.PeriodEntry, error) {
	if !periodSeverities[severity] {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, severity)
	}

	entry := &model.PeriodEntry{
		ID:        id.New(),
		UserID:    userID,
		Severity:  severity,
		Notes:     notes,
		EntryDate: entryDay(date),
	}
	if err := s.periodStore.Upsert(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to upsert period entry",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("upserting period entry: %w", err)
	}
	return entry, nil
}

func (s *periodService) List(ctx context.Context, userID int64) ([]model.PeriodEntry, error) {
	entries, err := s.periodStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing period entries: %w", err)
	}
	return entries, nil
}
