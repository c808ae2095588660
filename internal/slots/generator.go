package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// GeneratorOptions controls the rolling slot horizon.
type GeneratorOptions struct {
	HorizonDays  int    // calendar days ahead of From, inclusive of day 0
	DayStart     string // HH:MM
	DayEnd       string // HH:MM
	DurationMins int
	SkipWeekends bool
}

// DefaultGeneratorOptions matches business hours: 30-minute slots, 09:00 to
// 17:00, weekdays only, 30 days out.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		HorizonDays:  30,
		DayStart:     "09:00",
		DayEnd:       "17:00",
		DurationMins: 30,
		SkipWeekends: true,
	}
}

// Interval is one planned slot produced by Plan.
type Interval struct {
	Date      string
	StartTime string
	EndTime   string
}

// Plan enumerates the slot intervals for the horizon starting at from.
// It is pure; persistence happens in Generator.Run.
func Plan(from time.Time, opts GeneratorOptions) ([]Interval, error) {
	start, err := minutesOfDay(opts.DayStart)
	if err != nil {
		return nil, fmt.Errorf("slots: day start: %w", err)
	}
	end, err := minutesOfDay(opts.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("slots: day end: %w", err)
	}
	if opts.DurationMins <= 0 {
		return nil, fmt.Errorf("slots: duration must be positive, got %d", opts.DurationMins)
	}
	if end <= start {
		return nil, fmt.Errorf("slots: day end %s not after day start %s", opts.DayEnd, opts.DayStart)
	}

	var out []Interval
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < opts.HorizonDays; i++ {
		d := day.AddDate(0, 0, i)
		if opts.SkipWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		date := d.Format("2006-01-02")
		for t := start; t+opts.DurationMins <= end; t += opts.DurationMins {
			out = append(out, Interval{
				Date:      date,
				StartTime: formatMinutes(t),
				EndTime:   formatMinutes(t + opts.DurationMins),
			})
		}
	}
	return out, nil
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Generator populates the slot store for a rolling horizon. It is an
// administrative one-shot, not part of the request path.
type Generator struct {
	repo   *Repository
	logger *logging.Logger
}

// NewGenerator constructs a generator.
func NewGenerator(repo *Repository, logger *logging.Logger) *Generator {
	if repo == nil {
		panic("slots: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Generator{repo: repo, logger: logger}
}

// Run plans the horizon from the given day and inserts every interval that is
// not already present. Existing rows, reserved ones included, are left alone,
// so re-running the same horizon is a no-op. Returns the number of slots
// actually inserted.
func (g *Generator) Run(ctx context.Context, from time.Time, opts GeneratorOptions) (int, error) {
	plan, err := Plan(from, opts)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, iv := range plan {
		ok, err := g.repo.insertIfAbsent(ctx, iv.Date, iv.StartTime, iv.EndTime)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}

	g.logger.Info("slot horizon generated",
		"from", from.Format("2006-01-02"),
		"days", opts.HorizonDays,
		"planned", len(plan),
		"inserted", inserted,
	)
	return inserted, nil
}
