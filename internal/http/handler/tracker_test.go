package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/http/handler"
	"youmatter.app/server/internal/http/middleware"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/service"
)

var _ = Describe("TrackerHandler", func() {
	var (
		router  *gin.Engine
		auth    *mockAuthService
		journal *mockJournalService
		mood    *mockMoodService
		water   *mockWaterService
		period  *mockPeriodService
		feeling *mockFeelingService
	)

	user := &model.User{ID: 42, Name: "Priya", Email: "priya@example.com"}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()

		auth = &mockAuthService{
			validateSessionFn: func(_ context.Context, sessionID int64) (*model.User, error) {
				if sessionID == 7 {
					return user, nil
				}
				return nil, service.ErrSessionExpired
			},
		}
		journal = &mockJournalService{}
		mood = &mockMoodService{}
		water = &mockWaterService{}
		period = &mockPeriodService{}
		feeling = &mockFeelingService{}

		h := handler.NewTrackerHandler(journal, mood, water, period, feeling)
		api := router.Group("/api", middleware.RequireAuth(auth))
		api.POST("/journal", h.CreateJournal)
		api.GET("/journal", h.ListJournal)
		api.POST("/mood", h.LogMood)
		api.GET("/mood", h.ListMood)
		api.POST("/water", h.LogWater)
		api.POST("/period", h.LogPeriod)
		api.POST("/feeling", h.LogFeeling)
		api.GET("/feeling", h.ListFeelings)
	})

	do := func(method, path, body string, sessionID int64) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		}
		if sessionID > 0 {
			req.AddCookie(&http.Cookie{
				Name:  middleware.SessionCookieName,
				Value: fmt.Sprintf("%d", sessionID),
			})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("rejects requests without a session cookie", func() {
		w := do(http.MethodGet, "/api/journal", "", 0)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects requests with an expired session", func() {
		w := do(http.MethodGet, "/api/journal", "", 99)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("creates a journal entry for the authenticated user", func() {
		journal.createFn = func(_ context.Context, userID int64, title, content string) (*model.JournalEntry, error) {
			Expect(userID).To(Equal(int64(42)))
			return &model.JournalEntry{ID: 1, UserID: userID, Title: title, Content: content}, nil
		}

		w := do(http.MethodPost, "/api/journal", `{"title":"Rough day","content":"but getting by"}`, 7)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp struct {
			Entry model.JournalEntry `json:"entry"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Entry.Title).To(Equal("Rough day"))
	})

	It("returns 400 when the journal body is incomplete", func() {
		w := do(http.MethodPost, "/api/journal", `{"title":"no content"}`, 7)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists journal entries for the authenticated user", func() {
		journal.listFn = func(_ context.Context, userID int64) ([]model.JournalEntry, error) {
			Expect(userID).To(Equal(int64(42)))
			return []model.JournalEntry{{ID: 1, UserID: userID, Title: "Rough day"}}, nil
		}

		w := do(http.MethodGet, "/api/journal", "", 7)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Rough day"))
	})

	It("logs a mood with a client-supplied date", func() {
		var gotDate time.Time
		mood.logFn = func(_ context.Context, userID int64, m string, notes *string, date time.Time) (*model.MoodEntry, error) {
			gotDate = date
			return &model.MoodEntry{ID: 2, UserID: userID, Mood: m, Notes: notes}, nil
		}

		w := do(http.MethodPost, "/api/mood", `{"mood":"calm","date":"2026-08-27T12:00:00Z"}`, 7)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotDate).To(Equal(time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)))
	})

	It("passes a zero date when the client omits it", func() {
		mood.logFn = func(_ context.Context, userID int64, m string, _ *string, date time.Time) (*model.MoodEntry, error) {
			Expect(date.IsZero()).To(BeTrue())
			return &model.MoodEntry{ID: 2, UserID: userID, Mood: m}, nil
		}

		w := do(http.MethodPost, "/api/mood", `{"mood":"okay"}`, 7)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("accepts zero glasses of water", func() {
		water.logFn = func(_ context.Context, userID int64, glasses int32, _ time.Time) (*model.WaterEntry, error) {
			Expect(glasses).To(Equal(int32(0)))
			return &model.WaterEntry{ID: 3, UserID: userID, GlassesCount: glasses}, nil
		}

		w := do(http.MethodPost, "/api/water", `{"glasses_count":0}`, 7)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("maps invalid input from the service to 400", func() {
		period.logFn = func(_ context.Context, _ int64, severity string, _ *string, _ time.Time) (*model.PeriodEntry, error) {
			return nil, fmt.Errorf("%w: unknown severity %q", service.ErrInvalidInput, severity)
		}

		w := do(http.MethodPost, "/api/period", `{"severity":"extreme"}`, 7)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("maps unexpected service failures to 500", func() {
		feeling.listFn = func(_ context.Context, _ int64) ([]model.FeelingLog, error) {
			return nil, fmt.Errorf("listing feeling logs: connection reset")
		}

		w := do(http.MethodGet, "/api/feeling", "", 7)
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("creates a feeling log", func() {
		feeling.logFn = func(_ context.Context, userID int64, emoji string, _ *string, _ time.Time) (*model.FeelingLog, error) {
			return &model.FeelingLog{ID: 4, UserID: userID, FeelingEmoji: emoji}, nil
		}

		w := do(http.MethodPost, "/api/feeling", `{"feeling_emoji":"😔"}`, 7)
		Expect(w.Code).To(Equal(http.StatusCreated))
	})
})
