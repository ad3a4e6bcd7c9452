package router

import (
	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/handler"
	"youmatter.app/server/internal/http/middleware"
	"youmatter.app/server/internal/service"
)

// TrackerRouter mounts the daily tracker routes behind session auth.
func TrackerRouter(rg *gin.RouterGroup, authService service.AuthService, h *handler.TrackerHandler) {
	trackers := rg.Group("")
	trackers.Use(middleware.RequireAuth(authService))

	trackers.POST("/journal", h.CreateJournal)
	trackers.GET("/journal", h.ListJournal)
	trackers.POST("/mood", h.LogMood)
	trackers.GET("/mood", h.ListMood)
	trackers.POST("/water", h.LogWater)
	trackers.GET("/water", h.ListWater)
	trackers.POST("/period", h.LogPeriod)
	trackers.GET("/period", h.ListPeriod)
	trackers.POST("/feeling", h.LogFeeling)
	trackers.GET("/feeling", h.ListFeelings)
}
