// Package config handles loading the countdown configuration file and
// holding the in-memory record list behind the Store. The file is TOML; the
// countdown list is fully replaced on every reload, never merged.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DatetimeLayout is the only accepted target timestamp format. Targets are
// naive local timestamps with no timezone component.
const DatetimeLayout = "2006-01-02 15:04:05"

// Record is a single countdown entry from the config file. Datetime is kept
// as the raw string and parsed every tick, so a record with a bad timestamp
// is skipped per tick rather than rejected at load.
type Record struct {
	Title    string
	Datetime string
	Enabled  bool
}

// Pomodoro holds the initial Pomodoro engine settings.
type Pomodoro struct {
	Work              time.Duration
	ShortBreak        time.Duration
	LongBreak         time.Duration
	LongBreakInterval int
}

// File is the decoded configuration document.
type File struct {
	Countdown []Record
	Pomodoro  Pomodoro
	Reload    time.Duration
	Tick      time.Duration
}

// fileRecord mirrors a [[countdown]] table. Enabled is a pointer so an
// absent key can default to true.
type fileRecord struct {
	Title    string `mapstructure:"title"`
	Datetime string `mapstructure:"datetime"`
	Enabled  *bool  `mapstructure:"enabled"`
}

// fileDocument mirrors the TOML document shape.
type fileDocument struct {
	Countdown []fileRecord `mapstructure:"countdown"`
	Pomodoro  struct {
		Work              time.Duration `mapstructure:"work"`
		ShortBreak        time.Duration `mapstructure:"short_break"`
		LongBreak         time.Duration `mapstructure:"long_break"`
		LongBreakInterval int           `mapstructure:"long_break_interval"`
	} `mapstructure:"pomodoro"`
	Reload struct {
		Period time.Duration `mapstructure:"period"`
	} `mapstructure:"reload"`
	Tick struct {
		Period time.Duration `mapstructure:"period"`
	} `mapstructure:"tick"`
}

// Load reads and decodes the configuration file at path. Errors here are
// fatal at startup; on periodic reload the caller keeps the old snapshot.
func Load(path string) (*File, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	doc := &fileDocument{}
	if err := v.Unmarshal(doc); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	f := &File{
		Countdown: make([]Record, 0, len(doc.Countdown)),
		Pomodoro: Pomodoro{
			Work:              doc.Pomodoro.Work,
			ShortBreak:        doc.Pomodoro.ShortBreak,
			LongBreak:         doc.Pomodoro.LongBreak,
			LongBreakInterval: doc.Pomodoro.LongBreakInterval,
		},
		Reload: doc.Reload.Period,
		Tick:   doc.Tick.Period,
	}
	for _, rec := range doc.Countdown {
		f.Countdown = append(f.Countdown, Record{
			Title:    rec.Title,
			Datetime: rec.Datetime,
			Enabled:  rec.Enabled == nil || *rec.Enabled,
		})
	}

	return f, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	// Pomodoro defaults
	v.SetDefault("pomodoro.work", "25m")
	v.SetDefault("pomodoro.short_break", "5m")
	v.SetDefault("pomodoro.long_break", "15m")
	v.SetDefault("pomodoro.long_break_interval", 4)

	// Loop cadence defaults
	v.SetDefault("reload.period", "1s")
	v.SetDefault("tick.period", "50ms")
}
