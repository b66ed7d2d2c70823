package discord

import (
	"context"
	"fmt"
	"strconv"

	"statsbot/internal/app/activity"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Gateway is the event source: it feeds Discord message events into the
// activity service and serves the /statistics and /leaderboard commands.
type Gateway struct {
	session *discordgo.Session
	svc     activity.Service
	logger  *zap.SugaredLogger
	limit   int
}

func NewGateway(token string, svc activity.Service, logger *zap.Logger, leaderboardLimit int) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	if leaderboardLimit < 1 {
		leaderboardLimit = activity.DefaultLeaderboardLimit
	}

	return &Gateway{
		session: session,
		svc:     svc,
		logger:  logger.Sugar(),
		limit:   leaderboardLimit,
	}, nil
}

func (g *Gateway) Start() error {
	g.session.AddHandler(g.onMessageCreate)
	g.session.AddHandler(g.onInteractionCreate)
	g.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	g.logger.Infow("Discord gateway connected",
		"bot_user", g.session.State.User.Username,
	)

	if err := g.registerCommands(); err != nil {
		g.session.Close()
		return err
	}

	return nil
}

func (g *Gateway) Stop() error {
	return g.session.Close()
}

// onMessageCreate records one row per human-authored guild message. A failed
// write is logged and dropped: one bad event must never stall ingestion.
func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		// direct message, nothing to attribute a guild to
		return
	}

	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		g.logger.Warnw("Skipping message with unparsable author ID", "author_id", m.Author.ID)
		return
	}
	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		g.logger.Warnw("Skipping message with unparsable guild ID", "guild_id", m.GuildID)
		return
	}

	err = g.svc.TrackMessage(context.Background(), userID, m.Author.Username, guildID, m.Timestamp)
	if err != nil {
		g.logger.Errorw("Failed to track message",
			"user_id", userID,
			"guild_id", guildID,
			"error", err,
		)
	}
}
