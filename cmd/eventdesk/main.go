// Command eventdesk loads the event store, runs the dashboard derivations,
// and logs the overview a browser frontend would render.
package main

import (
	"context"
	"os"
	"time"

	"eventdesk/config"
	"eventdesk/internal/adapters/email"
	"eventdesk/internal/adapters/notify"
	"eventdesk/internal/repository/memory"
	"eventdesk/internal/seed"
	"eventdesk/internal/services"
	"eventdesk/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	events := seed.Events()
	if cfg.SeedFile != "" {
		events, err = seed.Load(cfg.SeedFile)
		if err != nil {
			logger.Error("load seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	repo := memory.NewEventRepo(events)
	mailer := email.NewMailer(email.Config{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFromAddress,
		FromName:        cfg.EmailFromName,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, logger)
	notifier := notify.FromConfig(cfg.Notifier, mailer, cfg.AdminEmail, logger)
	svc := services.NewEventService(repo, notifier, services.FixedDelay{D: cfg.SimulatedLatency}, 5*time.Second)

	ctx := context.Background()
	all, err := svc.Query(ctx, nil)
	if err != nil {
		logger.Error("query events", "error", err)
		os.Exit(1)
	}

	today := usecase.Today()
	stats := usecase.Overview(all, today)
	logger.Info("events overview",
		"total", stats.Total,
		"published", stats.Published,
		"upcoming", stats.Upcoming,
		"featured", stats.Featured,
	)
	for _, e := range usecase.Upcoming(all, today, 5) {
		logger.Info("upcoming event",
			"title", e.Title,
			"start", e.StartDate,
			"category", e.Category,
			"slug", e.Slug,
		)
	}
	for _, c := range usecase.CategoryDistribution(all, 6) {
		logger.Info("category distribution", "category", c.Name, "count", c.Count)
	}
	for _, s := range usecase.StatusDistribution(all) {
		logger.Info("status distribution", "status", s.Status, "count", s.Count)
	}
}
