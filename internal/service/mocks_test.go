package service_test

import (
	"context"

	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/service"
	"youmatter.app/server/internal/store"
)

type mockUserStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByWorkOSIDFn    func(ctx context.Context, workosID string) (*model.User, error)
	upsertByWorkOSIDFn func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	if m.getByWorkOSIDFn != nil {
		return m.getByWorkOSIDFn(ctx, workosID)
	}
	return nil, nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertByWorkOSIDFn != nil {
		return m.upsertByWorkOSIDFn(ctx, user)
	}
	return nil
}

type mockSessionStore struct {
	createFn   func(ctx context.Context, session *model.Session) error
	getValidFn func(ctx context.Context, id int64) (*model.Session, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockJournalStore struct {
	createFn     func(ctx context.Context, entry *model.JournalEntry) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.JournalEntry, error)
}

func (m *mockJournalStore) Create(ctx context.Context, entry *model.JournalEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockJournalStore) ListByUser(ctx context.Context, userID int64) ([]model.JournalEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockMoodStore struct {
	upsertFn     func(ctx context.Context, entry *model.MoodEntry) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.MoodEntry, error)
}

func (m *mockMoodStore) Upsert(ctx context.Context, entry *model.MoodEntry) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, entry)
	}
	return nil
}

func (m *mockMoodStore) ListByUser(ctx context.Context, userID int64) ([]model.MoodEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockWaterStore struct {
	upsertFn     func(ctx context.Context, entry *model.WaterEntry) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.WaterEntry, error)
}

func (m *mockWaterStore) Upsert(ctx context.Context, entry *model.WaterEntry) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, entry)
	}
	return nil
}

func (m *mockWaterStore) ListByUser(ctx context.Context, userID int64) ([]model.WaterEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockPeriodStore struct {
	upsertFn     func(ctx context.Context, entry *model.PeriodEntry) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.PeriodEntry, error)
}

func (m *mockPeriodStore) Upsert(ctx context.Context, entry *model.PeriodEntry) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, entry)
	}
	return nil
}

func (m *mockPeriodStore) ListByUser(ctx context.Context, userID int64) ([]model.PeriodEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockFeelingStore struct {
	createFn     func(ctx context.Context, log *model.FeelingLog) error
	listByUserFn func(ctx context.Context, userID int64) ([]model.FeelingLog, error)
}

func (m *mockFeelingStore) Create(ctx context.Context, log *model.FeelingLog) error {
	if m.createFn != nil {
		return m.createFn(ctx, log)
	}
	return nil
}

func (m *mockFeelingStore) ListByUser(ctx context.Context, userID int64) ([]model.FeelingLog, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

// mockTxRunner runs the function directly against the given stores.
type mockTxRunner struct {
	provider service.StoreProvider
	err      error
}

type mockStoreProvider struct {
	users    store.UserStore
	sessions store.SessionStore
}

func (m *mockStoreProvider) Users() store.UserStore       { return m.users }
func (m *mockStoreProvider) Sessions() store.SessionStore { return m.sessions }

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(m.provider)
}
