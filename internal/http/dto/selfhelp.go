package dto

import "youmatter.app/server/internal/selfhelp"

type ReportRequest struct {
	QuizID  string `json:"quiz_id" binding:"required"`
	Answers []int  `json:"answers" binding:"required"`
}

type ReportResponse struct {
	Report selfhelp.Report `json:"report"`
}

type QuizListResponse struct {
	Quizzes []selfhelp.Quiz `json:"quizzes"`
}
