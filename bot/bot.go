package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"arenaodds/events"
	"arenaodds/models"
	"arenaodds/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	DefaultWinRate float64
}

type Bot struct {
	config         Config
	session        *discordgo.Session
	oddsService    service.OddsService
	profileService service.ProfileService
	eventBus       *events.Bus
}

func New(config Config, oddsService service.OddsService, profileService service.ProfileService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:         config,
		session:        dg,
		oddsService:    oddsService,
		profileService: profileService,
		eventBus:       eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Surface the most recent lookup in the bot's presence
	eventBus.Subscribe(events.EventTypeEvaluationRecorded, func(ctx context.Context, event events.Event) {
		if recorded, ok := event.(events.EvaluationRecordedEvent); ok {
			if err := bot.updatePresence(recorded); err != nil {
				log.Errorf("Failed to update presence: %v", err)
			}
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// updatePresence sets the bot's activity to the latest evaluated format
func (b *Bot) updatePresence(recorded events.EvaluationRecordedEvent) error {
	name := recorded.FormatKey
	if f := models.FormatByKey(recorded.FormatKey); f != nil {
		name = f.Name
	}
	return b.session.UpdateGameStatus(0, fmt.Sprintf("%s EV (%.2fx)", name, recorded.ROIRatio))
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "ev":
		b.handleEVCommand(s, i)
	case "winrate":
		b.handleWinRateCommand(s, i)
	}
}

// respondWithError sends an ephemeral error message as the interaction response
func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}

// respondWithEmbed sends an embed as the interaction response
func (b *Bot) respondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Error sending embed response: %v", err)
	}
}
