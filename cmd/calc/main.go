package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"InMemShop/internal/calc"
	"InMemShop/internal/config"
	"InMemShop/pkg/kit"
)

func main() {
	service := "calc"

	cfg := config.Load()
	log := kit.NewLogger(service, cfg.Env)
	defer func() { _ = log.Sync() }()

	s := &calc.Server{Log: log}

	h := calc.NewHandler(s, calc.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(":"+cfg.Calc.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
