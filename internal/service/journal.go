package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"youmatter.app/server/common/id"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/store"
)

var ErrInvalidInput = errors.New("invalid input")

type JournalService interface {
	Create(ctx context.Context, userID int64, title, content string) (*model.JournalEntry, error)
	List(ctx context.Context, userID int64) ([]model.JournalEntry, error)
}

type journalService struct {
	journalStore store.JournalStore
}

func NewJournalService(journalStore store.JournalStore) JournalService {
	return &journalService{journalStore: journalStore}
}

func (s *journalService) Create(ctx context.Context, userID int64, title, content string) (*model.JournalEntry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	entry := &model.JournalEntry{
		ID:      id.New(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.journalStore.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to create journal entry",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	slog.InfoContext(ctx, "journal entry created", "entry_id", entry.ID, "user_id", userID)
	return entry, nil
}

func (s *journalService) List(ctx context.Context, userID int64) ([]model.JournalEntry, error) {
	entries, err := s.journalStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	return entries, nil
}

// entryDay collapses a timestamp to midnight UTC, which is the
// uniqueness key for the daily trackers. A zero time means today.
func entryDay(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
