package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "statistics",
		Description: "Show message statistics for a user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "User to show statistics for",
				Required:    false,
			},
		},
	},
	{
		Name:        "leaderboard",
		Description: "Show the top message senders in the server",
	},
}

func (g *Gateway) registerCommands() error {
	appID := g.session.State.User.ID
	for _, cmd := range commands {
		if _, err := g.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return fmt.Errorf("failed to register /%s command: %w", cmd.Name, err)
		}
	}
	g.logger.Infow("Slash commands registered", "count", len(commands))
	return nil
}

func (g *Gateway) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "statistics":
		g.handleStatistics(s, i)
	case "leaderboard":
		g.handleLeaderboard(s, i)
	}
}

func (g *Gateway) handleStatistics(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil || i.Member.User == nil {
		g.respondError(s, i, "this command only works in a server")
		return
	}

	target := i.Member.User
	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		target = opts[0].UserValue(s)
	}

	userID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		g.respondError(s, i, "invalid user")
		return
	}
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		g.respondError(s, i, "this command only works in a server")
		return
	}

	stats, err := g.svc.GetUserStatistics(context.Background(), userID, guildID)
	if err != nil {
		g.logger.Errorw("Failed to get statistics", "user_id", userID, "guild_id", guildID, "error", err)
		g.respondError(s, i, "failed to retrieve statistics")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Message Statistics for %s", target.Username),
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Today", Value: strconv.FormatInt(stats.TodayCount, 10), Inline: true},
			{Name: "Yesterday", Value: strconv.FormatInt(stats.YesterdayCount, 10), Inline: true},
			{Name: "Last 7 days", Value: strconv.FormatInt(stats.WeekCount, 10), Inline: true},
			{Name: "Last 30 days", Value: strconv.FormatInt(stats.MonthCount, 10), Inline: true},
			{Name: "Total", Value: strconv.FormatInt(stats.TotalCount, 10), Inline: true},
		},
	}

	g.respondEmbed(s, i, embed)
}

func (g *Gateway) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		g.respondError(s, i, "this command only works in a server")
		return
	}

	leaders, err := g.svc.GetLeaderboard(context.Background(), guildID, g.limit)
	if err != nil {
		g.logger.Errorw("Failed to get leaderboard", "guild_id", guildID, "error", err)
		g.respondError(s, i, "failed to retrieve leaderboard")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Server Leaderboard",
		Description: fmt.Sprintf("**Top %d Most Active Users**", g.limit),
		Color:       0xf1c40f,
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for idx, leader := range leaders {
		rank := fmt.Sprintf("#%d", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", rank, leader.Username),
			Value: fmt.Sprintf("**%d** messages", leader.MessageCount),
		})
	}

	g.respondEmbed(s, i, embed)
}

func (g *Gateway) respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		g.logger.Errorw("Failed to respond to interaction", "error", err)
	}
}

func (g *Gateway) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		g.logger.Errorw("Failed to respond to interaction", "error", err)
	}
}
