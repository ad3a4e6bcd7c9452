package model

import "time"

type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodEntry records one mood check-in per user per day.
// A second check-in on the same date replaces the first.
type MoodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Mood      string    `json:"mood"`
	Notes     *string   `json:"notes,omitempty"`
	EntryDate time.Time `json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WaterEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	GlassesCount int32     `json:"glasses_count"`
	EntryDate    time.Time `json:"entry_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PeriodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Severity  string    `json:"severity"`
	Notes     *string   `json:"notes,omitempty"`
	EntryDate time.Time `json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FeelingLog struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	FeelingEmoji string    `json:"feeling_emoji"`
	Notes        *string   `json:"notes,omitempty"`
	LoggedAt     time.Time `json:"logged_at"`
	CreatedAt    time.Time `json:"created_at"`
}
