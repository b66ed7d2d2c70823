package activity

import "time"

// Message is one tracked chat message. Rows are append-only: the recorder
// writes each exactly once and nothing in this service updates or deletes them.
type Message struct {
	ID        uint64    `json:"-" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null"`
	Username  string    `json:"username" gorm:"not null"` // display name as it was at send time
	GuildID   int64     `json:"guild_id" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

func (Message) TableName() string {
	return "messages"
}

type UserStatistics struct {
	TodayCount     int64 `json:"today"`
	YesterdayCount int64 `json:"yesterday"`
	WeekCount      int64 `json:"week"`
	MonthCount     int64 `json:"month"`
	TotalCount     int64 `json:"total"`
}

type LeaderboardEntry struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	MessageCount int64  `json:"message_count"`
}

type TrackMessageRequest struct {
	UserID    int64     `json:"user_id" binding:"required"`
	Username  string    `json:"username" binding:"required"`
	GuildID   int64     `json:"guild_id" binding:"required"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
}

type StatisticsResponse struct {
	UserID     int64           `json:"user_id"`
	GuildID    int64           `json:"guild_id"`
	Statistics *UserStatistics `json:"statistics"`
}

type LeaderboardResponse struct {
	GuildID int64               `json:"guild_id"`
	Leaders []*LeaderboardEntry `json:"leaders"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
