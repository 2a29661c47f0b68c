// Command stubapi serves an in-memory festival backend for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/fringe-portal/stubapi"
	refreshrepofake "github.com/jrsteele09/fringe-portal/token/refresh/repofake"
	fakeuserrepo "github.com/jrsteele09/fringe-portal/users/repofake"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Stub API failed")
	}
}

func run() error {
	var cfg stubapi.Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("env.Parse: %w", err)
	}

	accounts := fakeuserrepo.NewFakeUserRepo()
	if _, err := stubapi.Seed(accounts, cfg.Seed); err != nil {
		return fmt.Errorf("stubapi.Seed: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: stubapi.New(cfg, accounts, refreshrepofake.NewFakeRefreshTokenRepo()),
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Stub API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errs:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
