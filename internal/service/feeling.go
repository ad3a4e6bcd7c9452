package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"youmatter.app/server/common/id"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/store"
)

type FeelingService interface {
	Log(ctx context.Context, userID int64, emoji string, notes *string, loggedAt time.Time) (*model.FeelingLog, error)
	List(ctx context.Context, userID int64) ([]model.FeelingLog, error)
}

type feelingService struct {
	feelingStore store.FeelingStore
}

func NewFeelingService(feelingStore store.FeelingStore) FeelingService {
	return &feelingService{feelingStore: feelingStore}
}

func (s *feelingService) Log(ctx context.Context, userID int64, emoji string, notes *string, loggedAt time.Time) (*model.FeelingLog, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return nil, fmt.Errorf("%w: feeling emoji is required", ErrInvalidInput)
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	log := &model.FeelingLog{
		ID:           id.New(),
		UserID:       userID,
		FeelingEmoji: emoji,
		Notes:        notes,
		LoggedAt:     loggedAt,
	}
	if err := s.feelingStore.Create(ctx, log); err != nil {
		slog.ErrorContext(ctx, "failed to create feeling log",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("creating feeling log: %w", err)
	}
	return log, nil
}

func (s *feelingService) List(ctx context.Context, userID int64) ([]model.FeelingLog, error) {
	logs, err := s.feelingStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing feeling logs: %w", err)
	}
	return logs, nil
}
