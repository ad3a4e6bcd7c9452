package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/service"
)

var _ = Describe("JournalService", func() {
	var (
		journalStore *mockJournalStore
		svc          service.JournalService
	)

	BeforeEach(func() {
		journalStore = &mockJournalStore{}
		svc = service.NewJournalService(journalStore)
	})

	It("creates an entry with a generated id", func() {
		var saved *model.JournalEntry
		journalStore.createFn = func(ctx context.Context, entry *model.JournalEntry) error {
			saved = entry
			return nil
		}

		entry, err := svc.Create(context.Background(), 42, "  A hard day  ", "It got better by evening.")

		Expect(err).NotTo(HaveOccurred())
		Expect(saved).NotTo(BeNil())
		Expect(entry.ID).NotTo(BeZero())
		Expect(entry.UserID).To(Equal(int64(42)))
		Expect(entry.Title).To(Equal("A hard day"))
	})

	DescribeTable("rejects blank fields",
		func(title, content string) {
			_, err := svc.Create(context.Background(), 42, title, content)
			Expect(err).To(MatchError(service.ErrInvalidInput))
		},
		Entry("empty title", "", "content"),
		Entry("empty content", "title", ""),
		Entry("whitespace only", "   ", "   "),
	)

	It("propagates store failures", func() {
		journalStore.createFn = func(ctx context.Context, entry *model.JournalEntry) error {
			return errors.New("connection reset")
		}
		_, err := svc.Create(context.Background(), 42, "t", "c")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("MoodService", func() {
	var (
		moodStore *mockMoodStore
		svc       service.MoodService
	)

	BeforeEach(func() {
		moodStore = &mockMoodStore{}
		svc = service.NewMoodService(moodStore)
	})

	It("normalizes the entry date to midnight UTC", func() {
		// 01:00 IST on the 29th is still the 28th in UTC
		loc := time.FixedZone("IST", 5*3600+1800)
		entry, err := svc.Log(context.Background(), 42, "happy", nil,
			time.Date(2026, 8, 29, 1, 0, 0, 0, loc))

		Expect(err).NotTo(HaveOccurred())
		Expect(entry.EntryDate).To(Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)))
	})

	It("defaults a zero date to today", func() {
		entry, err := svc.Log(context.Background(), 42, "calm", nil, time.Time{})
		Expect(err).NotTo(HaveOccurred())

		now := time.Now().UTC()
		Expect(entry.EntryDate).To(Equal(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)))
	})

	It("rejects an empty mood", func() {
		_, err := svc.Log(context.Background(), 42, "  ", nil, time.Time{})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})
})

var _ = Describe("WaterService", func() {
	It("rejects negative glass counts", func() {
		svc := service.NewWaterService(&mockWaterStore{})
		_, err := svc.Log(context.Background(), 42, -1, time.Time{})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})

	It("upserts a valid count", func() {
		waterStore := &mockWaterStore{}
		var saved *model.WaterEntry
		waterStore.upsertFn = func(ctx context.Context, entry *model.WaterEntry) error {
			saved = entry
			return nil
		}

		svc := service.NewWaterService(waterStore)
		entry, err := svc.Log(context.Background(), 42, 8, time.Time{})

		Expect(err).NotTo(HaveOccurred())
		Expect(saved).NotTo(BeNil())
		Expect(entry.GlassesCount).To(Equal(int32(8)))
	})
})

var _ = Describe("PeriodService", func() {
	var svc service.PeriodService

	BeforeEach(func() {
		svc = service.NewPeriodService(&mockPeriodStore{})
	})

	DescribeTable("severity validation",
		func(severity string, ok bool) {
			_, err := svc.Log(context.Background(), 42, severity, nil, time.Time{})
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(service.ErrInvalidInput))
			}
		},
		Entry("none", "none", true),
		Entry("light", "light", true),
		Entry("medium", "medium", true),
		Entry("heavy", "heavy", true),
		Entry("unknown value", "extreme", false),
		Entry("empty", "", false),
	)
})

var _ = Describe("FeelingService", func() {
	var (
		feelingStore *mockFeelingStore
		svc          service.FeelingService
	)

	BeforeEach(func() {
		feelingStore = &mockFeelingStore{}
		svc = service.NewFeelingService(feelingStore)
	})

	It("rejects a missing emoji", func() {
		_, err := svc.Log(context.Background(), 42, "", nil, time.Time{})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})

	It("stamps a zero logged-at with the current time", func() {
		before := time.Now().UTC()
		log, err := svc.Log(context.Background(), 42, "😊", nil, time.Time{})

		Expect(err).NotTo(HaveOccurred())
		Expect(log.LoggedAt).To(BeTemporally(">=", before))
	})
})
