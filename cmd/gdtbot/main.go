package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"gdtbot/internal/config"
	"gdtbot/internal/lemmy"
	"gdtbot/internal/notify"
	"gdtbot/internal/scheduler"
	"gdtbot/internal/service"
	"gdtbot/internal/source/nhl"
	"gdtbot/internal/storage/sqlite"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlite.Open(cfg.Database.Path, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := lemmy.New(ctx, lemmy.Config{
		Instance:  cfg.Lemmy.Instance,
		Username:  cfg.Lemmy.Username,
		Password:  cfg.Lemmy.Password,
		Community: cfg.Lemmy.Community,
		Timeout:   cfg.Lemmy.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to lemmy", "error", err)
		os.Exit(1)
	}

	var notifier service.Notifier
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := notify.NewRabbitMQ(notify.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		notifier = rabbitMQ
	}

	feed := nhl.New(nhl.Config{
		BaseURL: cfg.Feed.BaseURL,
		Timeout: cfg.Feed.Timeout,
	}, logger)

	routing, err := service.NewRouting(cfg.Routing.ThreadTypes, cfg.Routing.CommentTypes)
	if err != nil {
		logger.Error("invalid routing config", "error", err)
		os.Exit(1)
	}

	teams := make(map[string]bool, len(cfg.Teams))
	for _, abbr := range cfg.Teams {
		teams[abbr] = true
	}

	reconciler := service.NewReconcileService(
		feed,
		publisher,
		sqlite.NewGameDayThreadStore(db),
		sqlite.NewDailyThreadStore(db),
		sqlite.NewCommentStore(db),
		notifier,
		logger,
		service.Config{
			Lead:    time.Duration(cfg.Sync.LeadMinutes) * time.Minute,
			Trail:   time.Duration(cfg.Sync.TrailMinutes) * time.Minute,
			Teams:   teams,
			Routing: routing,
		},
	)

	sched := scheduler.NewScheduler(reconciler, cfg.Sync.Interval, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting game day thread bot",
		"teams", cfg.Teams,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
