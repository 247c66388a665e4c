package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"arenaodds/models"
)

const (
	colorProfit = 0x00ff00
	colorLoss   = 0xff4444
	colorInfo   = 0x5865f2
)

// buildSummaryEmbed creates the ROI report embed for a single format
func buildSummaryEmbed(format *models.EventFormat, summary *models.ROISummary) *discordgo.MessageEmbed {
	color := colorProfit
	profitStr := fmt.Sprintf("+%s", FormatGems(summary.Profit))
	if summary.Profit < 0 {
		color = colorLoss
		profitStr = FormatGems(summary.Profit)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s at %s", format.Name, FormatWinRate(summary.WinRate)),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Expected Wins",
				Value:  fmt.Sprintf("%.1f", summary.ExpectedWins),
				Inline: true,
			},
			{
				Name:   "Expected Gems",
				Value:  FormatGems(summary.ExpectedGems),
				Inline: true,
			},
			{
				Name:   "Expected Packs",
				Value:  fmt.Sprintf("%.1f (+%.0f rares)", summary.ExpectedPacks, summary.BonusRares),
				Inline: true,
			},
			{
				Name:   "Total Value",
				Value:  fmt.Sprintf("%s gems", FormatGems(summary.TotalValue)),
				Inline: true,
			},
			{
				Name:   "Admission",
				Value:  fmt.Sprintf("%s gems", FormatGems(summary.Admission)),
				Inline: true,
			},
			{
				Name:   "Profit",
				Value:  fmt.Sprintf("%s gems (%.2fx)", profitStr, summary.ROIRatio),
				Inline: true,
			},
		},
	}
}

// buildOddsEmbed creates the win-count distribution table for a format
func buildOddsEmbed(format *models.EventFormat, winRate float64, dist models.WinCountDistribution) *discordgo.MessageEmbed {
	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%-6s %-12s %s\n", "Wins", "Probability", "Cumulative"))
	table.WriteString(strings.Repeat("-", 32) + "\n")

	cumulative := 0.0
	for wins, prob := range dist {
		cumulative += prob
		table.WriteString(fmt.Sprintf("%-6d %-12s %s\n",
			wins, fmt.Sprintf("%.1f%%", prob*100), fmt.Sprintf("%.1f%%", cumulative*100)))
	}
	table.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 %s record odds at %s", format.Name, FormatWinRate(winRate)),
		Color:       colorInfo,
		Description: table.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Expected wins: %.2f", dist.ExpectedWins()),
		},
	}
}

// buildSweepEmbed creates the win-rate sweep table for a format
func buildSweepEmbed(format *models.EventFormat, rows []*models.ROISummary) *discordgo.MessageEmbed {
	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%-7s %-6s %-7s %-7s %-8s %s\n",
		"Win%", "Wins", "Gems", "Value", "Profit", "Ratio"))
	table.WriteString(strings.Repeat("-", 44) + "\n")

	for _, row := range rows {
		table.WriteString(fmt.Sprintf("%-7s %-6.1f %-7s %-7s %-8s %.2f\n",
			fmt.Sprintf("%.0f%%", row.WinRate*100),
			row.ExpectedWins,
			FormatGems(row.ExpectedGems),
			FormatGems(row.TotalValue),
			FormatGems(row.Profit),
			row.ROIRatio))
	}
	table.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📈 %s value by win rate", format.Name),
		Color:       colorInfo,
		Description: table.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Admission: %s gems", FormatGems(format.Admission)),
		},
	}
}

// buildBreakEvenEmbed creates the break-even report for a format. The total
// line degrades to a plain message when the value curve never crosses the
// admission price.
func buildBreakEvenEmbed(format *models.EventFormat, gemsOnly float64, total float64, totalErr error) *discordgo.MessageEmbed {
	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("**Gems only:** %s per-game win rate\n", FormatWinRate(gemsOnly)))

	if totalErr != nil {
		desc.WriteString(fmt.Sprintf("**Gems + packs + rares:** %s\n", totalErr.Error()))
	} else {
		desc.WriteString(fmt.Sprintf("**Gems + packs + rares:** %s per-game win rate\n", FormatWinRate(total)))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚖️ %s break-even", format.Name),
		Color:       colorInfo,
		Description: desc.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Admission: %s gems", FormatGems(format.Admission)),
		},
	}
}

// buildHistoryEmbed creates the recent evaluation history table for a player
func buildHistoryEmbed(displayName string, evals []*models.Evaluation) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🗂️ Recent lookups for %s", displayName),
		Color: colorInfo,
	}

	if len(evals) == 0 {
		embed.Description = "No evaluations recorded yet. Run /ev summary to get started."
		return embed
	}

	var table strings.Builder
	table.WriteString("```\n")
	table.WriteString(fmt.Sprintf("%-14s %-7s %-8s %-7s %s\n",
		"Format", "Win%", "Profit", "Ratio", "Date"))
	table.WriteString(strings.Repeat("-", 46) + "\n")

	for _, eval := range evals {
		name := eval.FormatKey
		if f := models.FormatByKey(eval.FormatKey); f != nil {
			name = f.Name
		}
		if len(name) > 13 {
			name = name[:13]
		}
		table.WriteString(fmt.Sprintf("%-14s %-7s %-8s %-7.2f %s\n",
			name,
			fmt.Sprintf("%.0f%%", eval.WinRate*100),
			FormatGems(eval.Profit),
			eval.ROIRatio,
			eval.CreatedAt.Format("Jan 02")))
	}
	table.WriteString("```")

	embed.Description = table.String()
	return embed
}
