package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/neillbeauty/neill-beauty-api/internal/config"
	"github.com/neillbeauty/neill-beauty-api/internal/slots"
	"github.com/neillbeauty/neill-beauty-api/internal/store"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// generate-slots tops up the rolling booking horizon. It is safe to run
// on a schedule: slots that already exist are left untouched.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	opts := slots.GeneratorOptions{
		HorizonDays:  cfg.SlotHorizonDays,
		DayStart:     cfg.SlotDayStart,
		DayEnd:       cfg.SlotDayEnd,
		DurationMins: cfg.SlotDurationMins,
		SkipWeekends: cfg.SlotSkipWeekends,
	}

	var fromArg string
	flag.IntVar(&opts.HorizonDays, "days", opts.HorizonDays, "days ahead to generate")
	flag.StringVar(&opts.DayStart, "start", opts.DayStart, "first slot of the day (HH:MM)")
	flag.StringVar(&opts.DayEnd, "end", opts.DayEnd, "end of the last slot (HH:MM)")
	flag.IntVar(&opts.DurationMins, "duration", opts.DurationMins, "slot length in minutes")
	flag.BoolVar(&opts.SkipWeekends, "skip-weekends", opts.SkipWeekends, "skip Saturday and Sunday")
	flag.StringVar(&fromArg, "from", "", "first day to generate (YYYY-MM-DD, default today)")
	flag.Parse()

	from := time.Now()
	if fromArg != "" {
		parsed, err := time.Parse("2006-01-02", fromArg)
		if err != nil {
			logger.Error("invalid -from date", "value", fromArg)
			os.Exit(1)
		}
		from = parsed
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gen := slots.NewGenerator(slots.NewRepository(db), logger)
	inserted, err := gen.Run(ctx, from, opts)
	if err != nil {
		logger.Error("slot generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("slot generation finished", "inserted", inserted, "from", from.Format("2006-01-02"))
}
