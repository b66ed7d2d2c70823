package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"statsbot/internal/providers/redis"
	"statsbot/internal/utils"

	"go.uber.org/zap"
)

const (
	DefaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	leaderboardCacheTTL     = time.Minute
)

// ErrInvalidEvent marks caller errors on the write path (missing fields,
// zero timestamp) so the handler can map them to a 400 instead of a 500.
var ErrInvalidEvent = errors.New("invalid message event")

type Service interface {
	TrackMessage(ctx context.Context, userID int64, username string, guildID int64, timestamp time.Time) error
	GetUserStatistics(ctx context.Context, userID int64, guildID int64) (*UserStatistics, error)
	GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*LeaderboardEntry, error)
}

type service struct {
	repo        Repository
	redisP      *redis.RedisProvider
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
	cachePrefix string
	now         func() time.Time
}

func NewService(repo Repository, redisP *redis.RedisProvider, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		redisP:      redisP,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
		cachePrefix: "leaderboard:guild",
		now:         time.Now,
	}
}

// TrackMessage appends exactly one row. The insert commits before the call
// returns; on failure no partial row is visible. Sender-type filtering
// (bots) is the gateway's job, not done here.
func (s *service) TrackMessage(ctx context.Context, userID int64, username string, guildID int64, timestamp time.Time) error {
	if username == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidEvent)
	}
	if timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is zero", ErrInvalidEvent)
	}

	msg := &Message{
		UserID:    userID,
		Username:  username,
		GuildID:   guildID,
		Timestamp: timestamp.UTC(),
	}
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to track message: %w", err)
	}

	s.invalidateLeaderboardCache(guildID)

	if s.eventBus != nil {
		s.eventBus.Publish("message_tracked", map[string]interface{}{
			"user_id":   msg.UserID,
			"username":  msg.Username,
			"guild_id":  msg.GuildID,
			"timestamp": msg.Timestamp,
		})
	}

	return nil
}

// GetUserStatistics returns the five windowed counts for one (user, guild)
// pair. A pair with no recorded messages yields all zeros, not an error.
func (s *service) GetUserStatistics(ctx context.Context, userID int64, guildID int64) (*UserStatistics, error) {
	stats, err := s.repo.CountByWindows(ctx, userID, guildID, windowsAt(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get user statistics: %w", err)
	}
	return stats, nil
}

// GetLeaderboard returns the top users of a guild by lifetime message count.
// Non-positive limits fall back to the default; limits above 100 clamp to 100.
func (s *service) GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*LeaderboardEntry, error) {
	if limit < 1 {
		limit = DefaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	cacheKey := fmt.Sprintf("%s:%d:limit:%d", s.cachePrefix, guildID, limit)
	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var entries []*LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.repo.TopUsers(ctx, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(entries) > 0 && s.redisP != nil {
		data, err := json.Marshal(entries)
		if err == nil {
			s.redisP.SetEX(ctx, cacheKey, data, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *service) invalidateLeaderboardCache(guildID int64) {
	if s.redisP == nil {
		return
	}

	ctx := context.Background()
	pattern := fmt.Sprintf("%s:%d:limit:*", s.cachePrefix, guildID)
	var cursor uint64

	for {
		keys, cur, err := s.redisP.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			s.logger.Warnw("Redis scan failed during cache invalidation", "error", err, "pattern", pattern)
			return
		}

		if len(keys) > 0 {
			if _, err := s.redisP.Del(ctx, keys...).Result(); err != nil {
				s.logger.Warnw("Failed to delete cache keys", "error", err, "keys", keys)
			}
		}

		if cur == 0 {
			break
		}
		cursor = cur
	}
}
