package activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	TrackMessage(c *gin.Context)
	GetUserStatistics(c *gin.Context)
	GetLeaderboard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

func (h *handler) TrackMessage(c *gin.Context) {
	var req TrackMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.TrackMessage(c.Request.Context(), req.UserID, req.Username, req.GuildID, req.Timestamp)
	if err != nil {
		if errors.Is(err, ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "tracked"})
}

func (h *handler) GetUserStatistics(c *gin.Context) {
	guildID, err := strconv.ParseInt(c.Param("guild_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guild ID"})
		return
	}

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	stats, err := h.service.GetUserStatistics(c.Request.Context(), userID, guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get statistics"})
		return
	}

	c.JSON(http.StatusOK, StatisticsResponse{
		UserID:     userID,
		GuildID:    guildID,
		Statistics: stats,
	})
}

func (h *handler) GetLeaderboard(c *gin.Context) {
	guildID, err := strconv.ParseInt(c.Param("guild_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guild ID"})
		return
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLeaderboardLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultLeaderboardLimit
	}

	leaders, err := h.service.GetLeaderboard(c.Request.Context(), guildID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{
		GuildID: guildID,
		Leaders: leaders,
	})
}
