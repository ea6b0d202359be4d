// Package schedule turns a countdown snapshot into the ordered, formatted
// lines for one tick. Records are re-evaluated every cycle: a record with an
// unparseable timestamp is dropped for this tick only and reported through a
// diagnostic line.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/cdzone/countdown-cli/internal/config"
)

// Entry is one surviving countdown for the current tick. Due is set when the
// remaining time truncates to exactly zero seconds.
type Entry struct {
	Title     string
	Target    time.Time
	Remaining time.Duration
	Message   string
	Due       bool
}

// Build filters, parses, sorts, and formats the records against now. The
// returned entries are ordered by target timestamp ascending, ties keeping
// the original record order. Diagnostics carry one line per record whose
// timestamp failed to parse.
func Build(records []config.Record, now time.Time) (entries []Entry, diagnostics []string) {
	for _, rec := range records {
		if !rec.Enabled {
			continue
		}
		target, err := time.ParseInLocation(config.DatetimeLayout, rec.Datetime, now.Location())
		if err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"Error: Invalid datetime format for '%s'. Please use 'YYYY-MM-DD HH:MM:SS' format.", rec.Title))
			continue
		}
		entries = append(entries, Entry{Title: rec.Title, Target: target})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Target.Before(entries[j].Target)
	})

	for i := range entries {
		remaining := entries[i].Target.Sub(now)
		entries[i].Remaining = remaining
		entries[i].Message = Format(entries[i].Title, remaining)
		entries[i].Due = int64(remaining/time.Second) == 0
	}

	return entries, diagnostics
}

// Format renders the remaining time into its display band. Bands are chosen
// on whole signed seconds: more than one day, within one day, exactly now,
// and already past. Hours, minutes and seconds are wall-clock moduli; the
// day count and the seconds-ago value are totals.
func Format(title string, remaining time.Duration) string {
	secs := int64(remaining / time.Second)

	switch {
	case secs > 86400:
		days := secs / 86400
		return fmt.Sprintf("%s: There are %s days, %s:%s:%s secs left.",
			color.HiMagentaString("%s", title),
			color.HiYellowString("%d", days),
			color.HiYellowString("%02d", (secs/3600)%24),
			color.HiYellowString("%02d", (secs/60)%60),
			color.HiYellowString("%02d", secs%60),
		)
	case secs >= 1:
		millis := int64(remaining/time.Millisecond) % 1000
		return fmt.Sprintf("%s: There are %s:%s:%s.%s secs left.",
			color.HiRedString("%s", title),
			color.HiYellowString("%02d", (secs/3600)%24),
			color.HiYellowString("%02d", (secs/60)%60),
			color.HiYellowString("%02d", secs%60),
			color.HiYellowString("%03d", millis),
		)
	case secs == 0:
		// A fraction of a second past the target still counts as now; the
		// tick cadence cannot observe the instant itself.
		return fmt.Sprintf("%s: Now is the time!", title)
	default:
		return fmt.Sprintf("%s: The datetime was %d seconds ago.", title, -secs)
	}
}
