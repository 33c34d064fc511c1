package ytdlp

import (
	"strconv"
	"strings"
)

// ParseProgress extracts a completion percentage from one line of yt-dlp
// output. Lines without a '%' never match. Otherwise the first
// whitespace-delimited token that parses as a float once a trailing '%' is
// stripped wins; the value is not range checked.
func ParseProgress(line string) (float64, bool) {
	if !strings.Contains(line, "%") {
		return 0, false
	}
	for _, field := range strings.Fields(line) {
		value, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
		if err == nil {
			return value, true
		}
	}
	return 0, false
}
