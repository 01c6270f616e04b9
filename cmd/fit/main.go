package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/kbushick/infrastructure/infra/config"
	"github.com/kbushick/infrastructure/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	key := flag.String("config", "datasets", "data sets config under infra/config")
	port := flag.Int("metrics", 0, "port to serve the metrics on, 0 disables it")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	logger := log.With().Str("run", uuid.New().String()).Logger()

	var sets DataSets
	config.MustLoad(*key, &sets)

	m := metrics.New()
	var failed int
	for _, r := range fitAll(sets.Sets) {
		m.Observe(r.Set, r.Fit, r.Err)
		if r.Err != nil {
			logger.Error().Str("set", r.Set).Err(r.Err).Msg(r.String())
			failed++
			continue
		}
		logger.Info().
			Str("set", r.Set).
			Float64("a0", r.Fit.A0()).
			Float64("a0Error", r.Fit.A0Error()).
			Float64("a1", r.Fit.A1()).
			Float64("a1Error", r.Fit.A1Error()).
			Float64("r2", r.Fit.RSquared()).
			Float64("chi2", r.Fit.ChiSquared()).
			Msg(r.Fit.String())
		logger.Debug().
			Str("set", r.Set).
			Float64("correlation", r.Correlation).
			Msg(r.String())
	}

	if *port > 0 {
		srv := m.Serve(*port)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		<-ctx.Done()
		stop()
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("could not stop metrics server")
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
