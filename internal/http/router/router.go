package router

import (
	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/chat"
	"youmatter.app/server/internal/genai"
	"youmatter.app/server/internal/http/handler"
	"youmatter.app/server/internal/service"
	"youmatter.app/server/internal/youtube"
)

type RouterConfig struct {
	SiteURL      string
	IsProduction bool
}

func SetupRoutes(
	router *gin.Engine,
	services *service.Services,
	orchestrator *chat.Orchestrator,
	generator *genai.Client,
	searcher youtube.Searcher,
	cfg RouterConfig,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService, cfg.SiteURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	api := router.Group("/api")
	{
		AssistantRouter(api, handler.NewAssistantHandler(orchestrator))
		ChatRouter(api, handler.NewChatHandler(generator), handler.NewResourceHandler(generator))
		VideoRouter(api, handler.NewVideoHandler(searcher))
		SelfHelpRouter(api.Group("/selfhelp"), handler.NewSelfHelpHandler())

		trackerHandler := handler.NewTrackerHandler(
			services.Journal(),
			services.Mood(),
			services.Water(),
			services.Period(),
			services.Feelings(),
		)
		TrackerRouter(api, authService, trackerHandler)
	}
}
