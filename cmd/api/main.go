package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/exa"
	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/adapters/openaiad"
	"trip_planner/internal/adapters/redisad"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	searchClient, err := exa.New(cfg.ExaBase, cfg.ExaKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search client")
	}

	// no model key means extraction runs on the rule-based fallback
	var model domain.IntentModel
	if cfg.OpenAIKey != "" {
		ex, err := openaiad.New(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize intent model")
		}
		model = ex
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	intents := app.NewIntentService(model)
	sources := app.NewSourceAggregator(searchClient, cache, cfg.CacheTTL, cfg.SearchTimeout, cfg.SearchLimit)
	planner := app.NewPlanService(intents, sources)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		P:  planner,
		RL: server.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
