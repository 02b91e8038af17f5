package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"med-reminder/internal/adapters/auth/odin"
	"med-reminder/internal/adapters/capabilities/plansfeatures"
	"med-reminder/internal/adapters/notify/webhook"
	"med-reminder/internal/platform/alerts"
	"med-reminder/internal/platform/logger"
	"med-reminder/internal/ports/auth"
	"med-reminder/internal/ports/capabilities"
	"med-reminder/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("ODIN_BASE_URL"); baseURL != "" {
		client, err := odin.NewClient(odin.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("ODIN_API_KEY"),
		})
		if err != nil {
			log.Error("invalid odin config", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = odin.NewVerifier(client)
	}
	// verifier == nil => modo dev (X-Debug-User-ID)

	var caps capabilities.Resolver
	if baseURL := os.Getenv("PLANS_BASE_URL"); baseURL != "" {
		client, err := plansfeatures.NewClient(plansfeatures.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("PLANS_API_KEY"),
		})
		if err != nil {
			log.Error("invalid plans-features config", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		caps = plansfeatures.NewResolver(client)
	}

	handler, services := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Capabilities: caps,
		Log:          log,
	})

	// Poller de alertas: solo si hay webhook configurado.
	if url := os.Getenv("ALERT_WEBHOOK_URL"); url != "" {
		notifier, err := webhook.New(url, 10*time.Second)
		if err != nil {
			log.Error("invalid alert webhook", map[string]any{"err": err.Error()})
			os.Exit(1)
		}

		interval := alerts.DefaultInterval
		if raw := os.Getenv("ALERT_POLL_INTERVAL"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				interval = d
			}
		}

		poller := alerts.NewPoller(services.Schedules, notifier, log, interval)
		go poller.Run(context.Background())
		log.Info("alert poller started", map[string]any{"interval": interval.String()})
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
