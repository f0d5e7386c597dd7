package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"mlb-stats-client/domain/plays"
	"mlb-stats-client/internal/config"
	"mlb-stats-client/internal/logging"
	"mlb-stats-client/internal/metrics"
	"mlb-stats-client/internal/timeutil"
	"mlb-stats-client/internal/watch"
	"mlb-stats-client/statsapi"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_WATCH_RUN") == "1" {
		return
	}

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	date := flag.String("date", "", "date to watch, YYYY-MM-DD (default: today)")
	interval := flag.DurationP("interval", "i", 0, "refresh interval (default: WATCH_INTERVAL)")
	sportIDs := flag.IntSlice("sport-ids", []int{1}, "sport IDs to include")
	gameTypes := flag.StringSlice("game-types", []string{"R"}, "game types to include")
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-livewatch",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMetrics(context.Background()) }()
	if promHandler != nil {
		go serveMetrics(cfg.Metrics.Port, promHandler, logger)
	}

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:      cfg.StatsAPI.BaseURL,
		UserAgent:    cfg.StatsAPI.UserAgent,
		HTTPTimeout:  cfg.StatsAPI.HTTPTimeout,
		MaxRetries:   cfg.StatsAPI.MaxRetries,
		PlaysWorkers: cfg.StatsAPI.PlaysWorkers,
		Logger:       logger,
		Metrics:      recorder,
	})

	day := time.Now()
	if *date != "" {
		parsed, parseErr := timeutil.ParseDate(*date)
		if parseErr != nil {
			logging.Error(logger, "invalid --date", parseErr, logging.FieldDate, *date)
			os.Exit(1)
		}
		day = parsed
	}

	schedule, err := client.ScheduleRange(ctx, statsapi.ScheduleRangeParams{
		StartDate: day,
		EndDate:   day,
		SportIDs:  *sportIDs,
		GameTypes: *gameTypes,
	})
	if err != nil {
		logging.Error(logger, "schedule fetch failed", err)
		os.Exit(1)
	}
	if len(schedule) == 0 {
		logging.Info(logger, "no games scheduled", logging.FieldDate, timeutil.FormatDate(day))
		return
	}
	for _, g := range schedule {
		logging.Info(logger, "watching game",
			logging.FieldGameID, g.GameID,
			"away", g.Away,
			"home", g.Home,
			"state", string(g.State),
		)
	}

	refresh := cfg.WatchInterval
	if *interval > 0 {
		refresh = *interval
	}

	watcher := watch.New(client, watch.SinkFunc(printTables), schedule.GameIDs(), logger, recorder, refresh)
	watcher.Start(ctx)
	<-ctx.Done()
	watcher.Stop()
}

func printTables(tables map[int64]plays.Table) {
	ids := make([]int64, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		table := tables[id]
		fmt.Printf("game %d: %d events\n", id, len(table))
		for _, row := range table.FinalEvents() {
			if row.BatterName == nil || row.Event == nil {
				continue
			}
			fmt.Printf("  %s: %s\n", *row.BatterName, *row.Event)
		}
	}
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	if err := http.ListenAndServe(":"+port, mux); err != nil && err != http.ErrServerClosed {
		logging.Error(logger, "metrics server failed", err)
	}
}
