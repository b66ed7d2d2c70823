package activity

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.POST("/messages", handler.TrackMessage)

	guilds := rg.Group("/guilds")
	{
		guilds.GET("/:guild_id/users/:user_id/statistics", handler.GetUserStatistics)
		guilds.GET("/:guild_id/leaderboard", handler.GetLeaderboard)
	}
}
