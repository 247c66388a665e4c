package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"arenaodds/models"
)

// formatChoices builds the format option choices from the built-in formats
func formatChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Formats))
	for _, f := range models.Formats {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  f.Name,
			Value: f.Key,
		})
	}
	return choices
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	formatOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "format",
			Description: "Event format",
			Required:    required,
			Choices:     formatChoices(),
		}
	}

	winRateOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        "winrate",
		Description: "Per-game win rate between 0 and 1 (defaults to your stored rate)",
		Required:    false,
		MinValue:    floatPtr(0),
		MaxValue:    1,
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ev",
			Description: "Expected value calculations for Arena events",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "summary",
					Description: "Full ROI report for a format at your win rate",
					Options: []*discordgo.ApplicationCommandOption{
						formatOption(true),
						winRateOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "odds",
					Description: "Probability of each final record in a format",
					Options: []*discordgo.ApplicationCommandOption{
						formatOption(true),
						winRateOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sweep",
					Description: "Expected value across a range of win rates",
					Options: []*discordgo.ApplicationCommandOption{
						formatOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "from",
							Description: "Lowest win rate to evaluate (default 0.30)",
							Required:    false,
							MinValue:    floatPtr(0),
							MaxValue:    1,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "to",
							Description: "Highest win rate to evaluate (default 1.00)",
							Required:    false,
							MinValue:    floatPtr(0),
							MaxValue:    1,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "step",
							Description: "Increment between win rates (default 0.05)",
							Required:    false,
							MinValue:    floatPtr(0.005),
							MaxValue:    0.5,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "breakeven",
					Description: "Win rate needed to go infinite in a format",
					Options: []*discordgo.ApplicationCommandOption{
						formatOption(true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Your recent EV lookups",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "Number of lookups to show (default 10)",
							Required:    false,
							MinValue:    floatPtr(1),
							MaxValue:    25,
						},
					},
				},
			},
		},
		{
			Name:        "winrate",
			Description: "Manage your stored win rate",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Store your per-game win rate for future EV lookups",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "rate",
							Description: "Per-game win rate between 0 and 1",
							Required:    true,
							MinValue:    floatPtr(0),
							MaxValue:    1,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show your stored win rate",
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
