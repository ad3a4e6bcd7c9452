package store

import (
	"context"
	"errors"

	"youmatter.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for auth session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, id int64) (*model.Session, error)
	Delete(ctx context.Context, id int64) error
}

// JournalStore defines the contract for journal entry data access
type JournalStore interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.JournalEntry, error)
}

// MoodStore defines the contract for daily mood entry data access
type MoodStore interface {
	Upsert(ctx context.Context, entry *model.MoodEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.MoodEntry, error)
}

// WaterStore defines the contract for daily water intake data access
type WaterStore interface {
	Upsert(ctx context.Context, entry *model.WaterEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.WaterEntry, error)
}

// PeriodStore defines the contract for daily period entry data access
type PeriodStore interface {
	Upsert(ctx context.Context, entry *model.PeriodEntry) error
	ListByUser(ctx context.Context, userID int64) ([]model.PeriodEntry, error)
}

// FeelingStore defines the contract for feeling log data access
type FeelingStore interface {
	Create(ctx context.Context, log *model.FeelingLog) error
	ListByUser(ctx context.Context, userID int64) ([]model.FeelingLog, error)
}
