package router

import (
	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/handler"
)

func AssistantRouter(rg *gin.RouterGroup, h *handler.AssistantHandler) {
	rg.POST("/assistant", h.Respond)
}

// ChatRouter mounts the provider relay endpoints. Both keep the
// provider key server-side.
func ChatRouter(rg *gin.RouterGroup, chat *handler.ChatHandler, resource *handler.ResourceHandler) {
	rg.POST("/chat", chat.Relay)
	rg.POST("/gemini", resource.Generate)
}

func VideoRouter(rg *gin.RouterGroup, h *handler.VideoHandler) {
	rg.POST("/youtube", h.Search)
}
