package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleWinRateCommand handles the /winrate command with subcommands
func (b *Bot) handleWinRateCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		b.respondWithError(s, i, "Please specify a subcommand: set or show")
		return
	}

	switch options[0].Name {
	case "set":
		b.handleWinRateSet(s, i, options[0].Options)
	case "show":
		b.handleWinRateShow(s, i)
	default:
		b.respondWithError(s, i, "Unknown subcommand")
	}
}

// handleWinRateSet stores the caller's win rate
func (b *Bot) handleWinRateSet(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	opt := findOption(options, "rate")
	if opt == nil {
		b.respondWithError(s, i, "Please provide a win rate between 0 and 1.")
		return
	}

	profile, err := b.profileService.SetWinRate(ctx, discordID, i.Member.User.Username, opt.FloatValue())
	if err != nil {
		log.Printf("Error setting win rate for %d: %v", discordID, err)
		b.respondWithError(s, i, "Unable to store your win rate. Please try again.")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("✅ Stored win rate: **%s**. EV lookups now default to it.", FormatWinRate(profile.WinRate)),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to winrate set: %v", err)
	}
}

// handleWinRateShow displays the caller's stored win rate
func (b *Bot) handleWinRateShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	profile, err := b.profileService.GetProfile(ctx, discordID)
	if err != nil {
		log.Printf("Error loading profile for %d: %v", discordID, err)
		b.respondWithError(s, i, "Unable to retrieve your profile. Please try again.")
		return
	}

	var content string
	if profile == nil {
		content = fmt.Sprintf("You have no stored win rate; lookups assume **%s**. Use /winrate set to store one.",
			FormatWinRate(b.config.DefaultWinRate))
	} else {
		content = fmt.Sprintf("Your stored win rate is **%s** (updated %s).",
			FormatWinRate(profile.WinRate), FormatDiscordTimestamp(profile.UpdatedAt, "R"))
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to winrate show: %v", err)
	}
}
