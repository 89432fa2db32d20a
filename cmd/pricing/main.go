package main

import (
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"DynamicPricing/internal/pricing"
	"DynamicPricing/pkg/kit"
)

func main() {
	service := "pricing"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8000")

	s := &pricing.Server{
		Store:  pricing.NewStore(),
		Market: pricing.NewSimulator(),
		Log:    log,
	}

	h := pricing.NewHandler(s, pricing.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:   getenv("METRICS_TOKEN", ""),

		WebhookLimit:         atoienv("WEBHOOK_RATE_LIMIT", 100),
		WebhookWindowSeconds: atoienv("WEBHOOK_RATE_WINDOW_SECONDS", 1),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoienv(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
