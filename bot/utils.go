package bot

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatGems formats a gem amount with thousand separators, rounding to the
// nearest whole gem
func FormatGems(gems float64) string {
	str := fmt.Sprintf("%d", int64(math.Round(gems)))

	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}

	n := len(str)
	if n > 3 {
		var result strings.Builder
		for i, digit := range str {
			if i > 0 && (n-i)%3 == 0 {
				result.WriteRune(',')
			}
			result.WriteRune(digit)
		}
		str = result.String()
	}

	if neg {
		return "-" + str
	}
	return str
}

// FormatWinRate formats a win rate as a percentage with one decimal place
func FormatWinRate(winRate float64) string {
	return fmt.Sprintf("%.1f%%", winRate*100)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
