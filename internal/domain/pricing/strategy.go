package pricing

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"parkme/internal/pkg/errs"
)

type Strategy string

const (
	StrategyFlat         Strategy = "FLAT"
	StrategyHourly       Strategy = "HOURLY"
	StrategySlab         Strategy = "SLAB"
	StrategyDynamic      Strategy = "DYNAMIC"
	StrategySubscription Strategy = "SUBSCRIPTION"
)

func (s Strategy) String() string { return string(s) }

func ParseStrategy(v string) (Strategy, error) {
	switch s := Strategy(v); s {
	case StrategyFlat, StrategyHourly, StrategySlab, StrategyDynamic, StrategySubscription:
		return s, nil
	}
	return "", errs.Validation("unknown pricing strategy %q", v)
}

// StrategyConfig is the closed set of per-strategy parameters. Only the
// types in this file implement it.
type StrategyConfig interface {
	Strategy() Strategy
	validate() error
}

type FlatConfig struct {
	Amount Money `json:"amount"`
}

type HourlyConfig struct {
	RatePerHour Money `json:"ratePerHour"`
}

type Slab struct {
	// nil means unbounded
	MaxHours *float64 `json:"maxHours"`
	Price    Money    `json:"price"`
}

type SlabConfig struct {
	Slabs []Slab `json:"slabs"`
}

type PeakWindow struct {
	Days       []Weekday  `json:"days"`
	Start      ClockTime  `json:"start"`
	End        ClockTime  `json:"end"`
	Multiplier Multiplier `json:"multiplier"`
}

type DynamicConfig struct {
	RatePerHour       Money        `json:"ratePerHour"`
	PeakWindows       []PeakWindow `json:"peakWindows"`
	OffPeakMultiplier *Multiplier  `json:"offPeakMultiplier,omitempty"`
}

type SubscriptionConfig struct{}

func (FlatConfig) Strategy() Strategy         { return StrategyFlat }
func (HourlyConfig) Strategy() Strategy       { return StrategyHourly }
func (SlabConfig) Strategy() Strategy         { return StrategySlab }
func (DynamicConfig) Strategy() Strategy      { return StrategyDynamic }
func (SubscriptionConfig) Strategy() Strategy { return StrategySubscription }

func (FlatConfig) validate() error   { return nil }
func (HourlyConfig) validate() error { return nil }

func (c SlabConfig) validate() error {
	if len(c.Slabs) == 0 {
		return errs.Validation("slab pricing needs at least one slab")
	}
	prev := -1.0
	for i, s := range c.Slabs {
		if s.MaxHours == nil {
			if i != len(c.Slabs)-1 {
				return errs.Validation("only the last slab may be unbounded")
			}
			continue
		}
		if *s.MaxHours <= prev {
			return errs.Validation("slab bounds must be strictly increasing")
		}
		prev = *s.MaxHours
	}
	return nil
}

func (c DynamicConfig) validate() error {
	for _, w := range c.PeakWindows {
		if !w.Start.Before(w.End) {
			return errs.Validation("peak window start %s must be before end %s", w.Start, w.End)
		}
	}
	return nil
}

func (SubscriptionConfig) validate() error { return nil }

// DecodeConfig parses the stored JSON parameters for strategy.
func DecodeConfig(strategy Strategy, raw []byte) (StrategyConfig, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	var cfg StrategyConfig
	var err error
	switch strategy {
	case StrategyFlat:
		var c FlatConfig
		err = json.Unmarshal(raw, &c)
		cfg = c
	case StrategyHourly:
		var c HourlyConfig
		err = json.Unmarshal(raw, &c)
		cfg = c
	case StrategySlab:
		var c SlabConfig
		err = json.Unmarshal(raw, &c)
		cfg = c
	case StrategyDynamic:
		var c DynamicConfig
		err = json.Unmarshal(raw, &c)
		cfg = c
	case StrategySubscription:
		cfg = SubscriptionConfig{}
	default:
		return nil, errs.Validation("unknown pricing strategy %q", strategy)
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "decode %s config", strategy), errs.ErrValidation)
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Billable is the interval a strategy prices, after free minutes.
type Billable struct {
	Start   time.Time
	Minutes int64
}

func (b Billable) startedHours() int64 {
	if b.Minutes <= 0 {
		return 0
	}
	return (b.Minutes + 59) / 60
}

// ComputePrice is the single dispatch point for every strategy.
func ComputePrice(cfg StrategyConfig, b Billable) (Money, error) {
	switch c := cfg.(type) {
	case FlatConfig:
		return c.Amount, nil
	case HourlyConfig:
		return c.RatePerHour.Mul(b.startedHours()), nil
	case SlabConfig:
		return slabPrice(c, b.Minutes), nil
	case DynamicConfig:
		return c.RatePerHour.Scale(c.multiplierAt(b.Start)).Mul(b.startedHours()), nil
	case SubscriptionConfig:
		return Zero(), nil
	default:
		return Money{}, errs.Newf("unsupported pricing config %T", cfg)
	}
}

func slabPrice(c SlabConfig, minutes int64) Money {
	for _, s := range c.Slabs {
		if s.MaxHours == nil || float64(minutes) <= *s.MaxHours*60 {
			return s.Price
		}
	}
	// every slab is bounded and exceeded
	return c.Slabs[len(c.Slabs)-1].Price
}

func (c DynamicConfig) multiplierAt(t time.Time) Multiplier {
	for _, w := range c.PeakWindows {
		if w.contains(t) {
			return w.Multiplier
		}
	}
	if c.OffPeakMultiplier != nil {
		return *c.OffPeakMultiplier
	}
	return One
}

func (w PeakWindow) contains(t time.Time) bool {
	if len(w.Days) > 0 && !containsDay(w.Days, t.Weekday()) {
		return false
	}
	ct := ClockTimeOf(t)
	return !ct.Before(w.Start) && ct.Before(w.End)
}

func containsDay(days []Weekday, d time.Weekday) bool {
	for _, wd := range days {
		if time.Weekday(wd) == d {
			return true
		}
	}
	return false
}

// ClockTime is a wall-clock time of day in minutes since midnight,
// encoded as "HH:MM".
type ClockTime int

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Validation("invalid clock time %q", s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) Before(o ClockTime) bool { return c < o }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	parsed, err := ParseClockTime(unquote(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Weekday encodes as a three-letter upper-case name ("MON").
type Weekday time.Weekday

var weekdayNames = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

func ParseWeekday(s string) (Weekday, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if strings.HasPrefix(u, n) {
			return Weekday(i), nil
		}
	}
	return 0, errs.Validation("invalid weekday %q", s)
}

func (d Weekday) String() string { return weekdayNames[int(d)%7] }

func (d Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Weekday) UnmarshalJSON(b []byte) error {
	parsed, err := ParseWeekday(unquote(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
