package bot

import (
	"context"
	"errors"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"arenaodds/models"
	"arenaodds/service"
)

// handleEVCommand handles the /ev command with subcommands
func (b *Bot) handleEVCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		b.respondWithError(s, i, "Please specify a subcommand: summary, odds, sweep, breakeven or history")
		return
	}

	switch options[0].Name {
	case "summary":
		b.handleEVSummary(s, i, options[0].Options)
	case "odds":
		b.handleEVOdds(s, i, options[0].Options)
	case "sweep":
		b.handleEVSweep(s, i, options[0].Options)
	case "breakeven":
		b.handleEVBreakEven(s, i, options[0].Options)
	case "history":
		b.handleEVHistory(s, i, options[0].Options)
	default:
		b.respondWithError(s, i, "Unknown subcommand")
	}
}

// findOption returns the named option or nil
func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// resolveFormat looks up the format named by the required format option
func resolveFormat(options []*discordgo.ApplicationCommandInteractionDataOption) *models.EventFormat {
	opt := findOption(options, "format")
	if opt == nil {
		return nil
	}
	return models.FormatByKey(opt.StringValue())
}

// resolveWinRate picks the win rate for a lookup: an explicit option wins,
// then the caller's stored profile, then the configured default.
func (b *Bot) resolveWinRate(ctx context.Context, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) float64 {
	if opt := findOption(options, "winrate"); opt != nil {
		return opt.FloatValue()
	}

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		return b.config.DefaultWinRate
	}

	profile, err := b.profileService.GetProfile(ctx, discordID)
	if err != nil {
		log.Printf("Error loading profile for %d: %v", discordID, err)
		return b.config.DefaultWinRate
	}
	if profile != nil {
		return profile.WinRate
	}
	return b.config.DefaultWinRate
}

// handleEVSummary computes and displays the full ROI report for a format
func (b *Bot) handleEVSummary(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	format := resolveFormat(options)
	if format == nil {
		b.respondWithError(s, i, "Unknown event format.")
		return
	}
	winRate := b.resolveWinRate(ctx, i, options)

	summary, err := b.oddsService.Summary(format, winRate)
	if err != nil {
		log.Printf("Error computing summary for %s: %v", format.Key, err)
		b.respondWithError(s, i, "Unable to compute the report. Please try again.")
		return
	}

	// History is best effort; the report still goes out if the write fails
	if discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64); err == nil {
		if _, err := b.profileService.RecordEvaluation(ctx, discordID, summary); err != nil {
			log.Printf("Error recording evaluation for %d: %v", discordID, err)
		}
	}

	b.respondWithEmbed(s, i, buildSummaryEmbed(format, summary))
}

// handleEVOdds displays the probability of each final record
func (b *Bot) handleEVOdds(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	format := resolveFormat(options)
	if format == nil {
		b.respondWithError(s, i, "Unknown event format.")
		return
	}
	winRate := b.resolveWinRate(ctx, i, options)

	dist, err := b.oddsService.Distribution(format, winRate)
	if err != nil {
		log.Printf("Error computing distribution for %s: %v", format.Key, err)
		b.respondWithError(s, i, "Unable to compute the odds. Please try again.")
		return
	}

	b.respondWithEmbed(s, i, buildOddsEmbed(format, winRate, dist))
}

// handleEVSweep displays expected value across a range of win rates
func (b *Bot) handleEVSweep(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	format := resolveFormat(options)
	if format == nil {
		b.respondWithError(s, i, "Unknown event format.")
		return
	}

	from, to, step := 0.30, 1.00, 0.05
	if opt := findOption(options, "from"); opt != nil {
		from = opt.FloatValue()
	}
	if opt := findOption(options, "to"); opt != nil {
		to = opt.FloatValue()
	}
	if opt := findOption(options, "step"); opt != nil {
		step = opt.FloatValue()
	}
	if to < from {
		b.respondWithError(s, i, "The 'to' win rate must not be below 'from'.")
		return
	}

	rows, err := b.oddsService.Sweep(format, from, to, step)
	if err != nil {
		log.Printf("Error computing sweep for %s: %v", format.Key, err)
		b.respondWithError(s, i, "Unable to compute the sweep. Please try again.")
		return
	}

	b.respondWithEmbed(s, i, buildSweepEmbed(format, rows))
}

// handleEVBreakEven displays the break-even win rates for a format
func (b *Bot) handleEVBreakEven(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	format := resolveFormat(options)
	if format == nil {
		b.respondWithError(s, i, "Unknown event format.")
		return
	}

	gemsOnly, err := b.oddsService.BreakEvenGems(format)
	if err != nil {
		log.Printf("Error computing gem break-even for %s: %v", format.Key, err)
		b.respondWithError(s, i, "Unable to compute the break-even point. Please try again.")
		return
	}

	total, err := b.oddsService.BreakEven(format)
	if err != nil && !errors.Is(err, service.ErrAlwaysProfitable) && !errors.Is(err, service.ErrNeverProfitable) {
		log.Printf("Error computing total break-even for %s: %v", format.Key, err)
		b.respondWithError(s, i, "Unable to compute the break-even point. Please try again.")
		return
	}

	b.respondWithEmbed(s, i, buildBreakEvenEmbed(format, gemsOnly, total, err))
}

// handleEVHistory displays the caller's recent evaluations
func (b *Bot) handleEVHistory(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	limit := 10
	if opt := findOption(options, "count"); opt != nil {
		limit = int(opt.IntValue())
	}

	evals, err := b.profileService.RecentEvaluations(ctx, discordID, limit)
	if err != nil {
		log.Printf("Error loading evaluations for %d: %v", discordID, err)
		b.respondWithError(s, i, "Unable to retrieve your history. Please try again.")
		return
	}

	b.respondWithEmbed(s, i, buildHistoryEmbed(i.Member.User.Username, evals))
}
