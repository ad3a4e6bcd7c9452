package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/dto"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/youtube"
)

type VideoHandler struct {
	searcher youtube.Searcher
}

func NewVideoHandler(searcher youtube.Searcher) *VideoHandler {
	return &VideoHandler{searcher: searcher}
}

func (h *VideoHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.VideoSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	videos, err := h.searcher.Search(ctx, req.Query)
	if err != nil {
		slog.ErrorContext(ctx, "video search failed", "query", req.Query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "video search unavailable"})
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}

	c.JSON(http.StatusOK, dto.VideoSearchResponse{Videos: videos})
}
