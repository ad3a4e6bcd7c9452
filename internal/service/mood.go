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

type MoodService interface {
	Log(ctx context.Context, userID int64, mood string, notes *string, date time.Time) (*model.MoodEntry, error)
	List(ctx context.Context, userID int64) ([]model.MoodEntry, error)
}

type moodService struct {
	moodStore store.MoodStore
}

func NewMoodService(moodStore store.MoodStore) MoodService {
	return &moodService{moodStore: moodStore}
}

func (s *moodService) Log(ctx context.Context, userID int64, mood string, notes *string, date time.Time) (*model.MoodEntry, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is required", ErrInvalidInput)
	}

	entry := &model.MoodEntry{
		ID:        id.New(),
		UserID:    userID,
		Mood:      mood,
		Notes:     notes,
		EntryDate: entryDay(date),
	}
	if err := s.moodStore.Upsert(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to upsert mood entry",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("upserting mood entry: %w", err)
	}
	return entry, nil
}

func (s *moodService) List(ctx context.Context, userID int64) ([]model.MoodEntry, error) {
	entries, err := s.moodStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing mood entries: %w", err)
	}
	return entries, nil
}
