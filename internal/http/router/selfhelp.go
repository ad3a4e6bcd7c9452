package router

import (
	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/handler"
)

func SelfHelpRouter(rg *gin.RouterGroup, h *handler.SelfHelpHandler) {
	rg.GET("/quizzes", h.ListQuizzes)
	rg.POST("/report", h.GenerateReport)
}
