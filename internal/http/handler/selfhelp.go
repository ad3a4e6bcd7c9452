package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/dto"
	"youmatter.app/server/internal/selfhelp"
)

type SelfHelpHandler struct{}

func NewSelfHelpHandler() *SelfHelpHandler {
	return &SelfHelpHandler{}
}

func (h *SelfHelpHandler) ListQuizzes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.QuizListResponse{Quizzes: selfhelp.Quizzes()})
}

func (h *SelfHelpHandler) GenerateReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quiz_id and answers are required"})
		return
	}

	quiz, ok := selfhelp.GetQuiz(req.QuizID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown quiz"})
		return
	}

	report, err := selfhelp.GenerateReport(quiz, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Report: report})
}
