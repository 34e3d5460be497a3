package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"InMemShop/internal/config"
	"InMemShop/internal/users"
	"InMemShop/pkg/kit"
)

func main() {
	service := "users"

	cfg := config.Load()
	log := kit.NewLogger(service, cfg.Env)
	defer func() { _ = log.Sync() }()

	s := &users.Server{
		Log:   log,
		Store: users.NewMemStore(),
	}

	h := users.NewHandler(s, users.HTTPDeps{
		Log:                 log,
		Service:             service,
		Registry:            prometheus.NewRegistry(),
		MetricsEnabled:      cfg.Metrics.Enabled,
		MetricsToken:        cfg.Metrics.Token,
		RegisterLimitPerMin: cfg.Limits.RegisterPerMin,
	})

	if err := kit.RunHTTPServer(":"+cfg.Users.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
