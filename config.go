package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type config struct {
	StripeSecretKey      string        `env:"STRIPE_SECRET_KEY"`
	StripePublishableKey string        `env:"STRIPE_PUBLISHABLE_KEY"`
	FrontendURL          string        `env:"FRONTEND_URL" envDefault:"http://localhost:4242"`
	Port                 int           `env:"PORT" envDefault:"4242"`
	StripeTimeout        time.Duration `env:"STRIPE_TIMEOUT" envDefault:"10s"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StripeSecretKey = strings.TrimSpace(cfg.StripeSecretKey)
	cfg.StripePublishableKey = strings.TrimSpace(cfg.StripePublishableKey)
	cfg.FrontendURL = strings.TrimRight(strings.TrimSpace(cfg.FrontendURL), "/")

	if cfg.StripeSecretKey == "" {
		return config{}, errors.New("STRIPE_SECRET_KEY is required")
	}
	if cfg.FrontendURL == "" {
		return config{}, errors.New("FRONTEND_URL is required")
	}

	return cfg, nil
}
