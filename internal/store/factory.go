package store

import (
	"youmatter.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Journal() JournalStore {
	return newJournalStore(s.queries)
}

func (s *Stores) Mood() MoodStore {
	return newMoodStore(s.queries)
}

func (s *Stores) Water() WaterStore {
	return newWaterStore(s.queries)
}

func (s *Stores) Period() PeriodStore {
	return newPeriodStore(s.queries)
}

func (s *Stores) Feelings() FeelingStore {
	return newFeelingStore(s.queries)
}
