package bench

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reportf formats a thousands-separated benchmark summary line, in the
// style of a perft report: count, rate, and elapsed wall time.
func reportf(label string, count int, elapsed time.Duration) string {
	p := message.NewPrinter(language.English)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(count) / elapsed.Seconds()
	}
	return p.Sprintf("%s: count=%d rate=%.0f/s (%.3fs elapsed)", label, count, rate, elapsed.Seconds())
}
