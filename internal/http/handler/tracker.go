package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/dto"
	"youmatter.app/server/internal/http/middleware"
	"youmatter.app/server/internal/service"
)

// TrackerHandler serves the daily wellness trackers. Every route
// requires an authenticated session.
type TrackerHandler struct {
	journalService service.JournalService
	moodService    service.MoodService
	waterService   service.WaterService
	periodService  service.PeriodService
	feelingService service.FeelingService
}

func NewTrackerHandler(
	journalService service.JournalService,
	moodService service.MoodService,
	waterService service.WaterService,
	periodService service.PeriodService,
	feelingService service.FeelingService,
) *TrackerHandler {
	return &TrackerHandler{
		journalService: journalService,
		moodService:    moodService,
		waterService:   waterService,
		periodService:  periodService,
		feelingService: feelingService,
	}
}

func (h *TrackerHandler) CreateJournal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *TrackerHandler) ListJournal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entries, err := h.journalService.List(c.Request.Context(), user.ID)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) LogMood(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood is required"})
		return
	}

	entry, err := h.moodService.Log(c.Request.Context(), user.ID, req.Mood, req.Notes, timeOrZero(req.Date))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *TrackerHandler) ListMood(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entries, err := h.moodService.List(c.Request.Context(), user.ID)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) LogWater(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.LogWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "glasses_count is required"})
		return
	}

	entry, err := h.waterService.Log(c.Request.Context(), user.ID, *req.GlassesCount, timeOrZero(req.Date))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *TrackerHandler) ListWater(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entries, err := h.waterService.List(c.Request.Context(), user.ID)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) LogPeriod(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.LogPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity is required"})
		return
	}

	entry, err := h.periodService.Log(c.Request.Context(), user.ID, req.Severity, req.Notes, timeOrZero(req.Date))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *TrackerHandler) ListPeriod(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entries, err := h.periodService.List(c.Request.Context(), user.ID)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) LogFeeling(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.LogFeelingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feeling_emoji is required"})
		return
	}

	log, err := h.feelingService.Log(c.Request.Context(), user.ID, req.FeelingEmoji, req.Notes, timeOrZero(req.Timestamp))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"log": log})
}

func (h *TrackerHandler) ListFeelings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	logs, err := h.feelingService.List(c.Request.Context(), user.ID)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func writeTrackerError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
