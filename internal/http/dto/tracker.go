package dto

import "time"

type CreateJournalRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1"`
}

type LogMoodRequest struct {
	Mood  string     `json:"mood" binding:"required,min=1,max=64"`
	Notes *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Date  *time.Time `json:"date,omitempty"`
}

type LogWaterRequest struct {
	GlassesCount *int32     `json:"glasses_count" binding:"required"`
	Date         *time.Time `json:"date,omitempty"`
}

type LogPeriodRequest struct {
	Severity string     `json:"severity" binding:"required"`
	Notes    *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Date     *time.Time `json:"date,omitempty"`
}

type LogFeelingRequest struct {
	FeelingEmoji string     `json:"feeling_emoji" binding:"required,min=1,max=16"`
	Notes        *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}
