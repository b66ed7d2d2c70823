package activity

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertMessage(ctx context.Context, msg *Message) error
	CountByWindows(ctx context.Context, userID int64, guildID int64, w statWindows) (*UserStatistics, error)
	TopUsers(ctx context.Context, guildID int64, limit int) ([]*LeaderboardEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// CountByWindows computes all five counts in a single pass so every window
// reflects the same snapshot; interleaved writes cannot skew one window
// against another. Zero matching rows is a normal all-zero result.
func (r *repository) CountByWindows(ctx context.Context, userID int64, guildID int64, w statWindows) (*UserStatistics, error) {
	var stats UserStatistics
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE timestamp >= ?) AS today_count,
			COUNT(*) FILTER (WHERE timestamp >= ? AND timestamp < ?) AS yesterday_count,
			COUNT(*) FILTER (WHERE timestamp >= ?) AS week_count,
			COUNT(*) FILTER (WHERE timestamp >= ?) AS month_count,
			COUNT(*) AS total_count
		FROM messages
		WHERE user_id = ? AND guild_id = ?
	`, w.TodayStart, w.YesterdayStart, w.TodayStart, w.WeekAgo, w.MonthAgo, userID, guildID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopUsers groups by (user_id, username): the username column is a per-message
// snapshot, so a user who renamed mid-history shows up once per captured name.
// Ties on equal counts order by user_id ascending to keep results deterministic.
func (r *repository) TopUsers(ctx context.Context, guildID int64, limit int) ([]*LeaderboardEntry, error) {
	var entries []*LeaderboardEntry
	err := r.db.WithContext(ctx).Model(&Message{}).
		Select("user_id, username, COUNT(*) AS message_count").
		Where("guild_id = ?", guildID).
		Group("user_id, username").
		Order("message_count DESC, user_id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
