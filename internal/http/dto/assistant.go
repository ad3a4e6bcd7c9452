package dto

import "youmatter.app/server/internal/model"

type AssistantRequest struct {
	Message string          `json:"message" binding:"required,min=1,max=4000"`
	History []model.Message `json:"history,omitempty"`
}

type AssistantResponse struct {
	Messages []model.Message `json:"messages"`
}

type ResourceRequest struct {
	Query string `json:"query" binding:"required,min=1,max=2000"`
}

type ResourceResponse struct {
	Text string `json:"text"`
}

type VideoSearchRequest struct {
	Query string `json:"query" binding:"required,min=1,max=500"`
}

type VideoSearchResponse struct {
	Videos []model.Video `json:"videos"`
}
