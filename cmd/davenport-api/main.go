// @title         Davenport API
// @version       0.1.0
// @description   Storefront catalog, signals, recommendations, and payments

package main

import (
	"context"

	"davenport/internal/platform/config"
	"davenport/internal/platform/logger"
	phttp "davenport/internal/platform/net/http"
	"davenport/internal/platform/store"

	"davenport/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")   // pgCfg lives under SERVICE_PGSQL_*
	rdCfg := root.Prefix("SERVICE_REDIS_")   // rdCfg lives under SERVICE_REDIS_*
	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + optional redis)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			Redis: store.RedisConfig{
				Enabled: rdCfg.MayBool("ENABLED", false),
				Addr:    rdCfg.MayString("ADDR", "127.0.0.1:6379"),
				DB:      rdCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
