package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"InMemShop/internal/config"
	"InMemShop/internal/shop"
	"InMemShop/pkg/kit"
)

func main() {
	service := "shop"

	cfg := config.Load()
	log := kit.NewLogger(service, cfg.Env)
	defer func() { _ = log.Sync() }()

	s := &shop.Server{
		Store: shop.NewMemStore(),
		Log:   log,
	}

	h := shop.NewHandler(s, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunHTTPServer(":"+cfg.Shop.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
