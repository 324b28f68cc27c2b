package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/spacetraveling/internal/cms"
	"github.com/spacetraveling/internal/config"
	"github.com/spacetraveling/internal/handler"
	"github.com/spacetraveling/internal/router"
	"github.com/spacetraveling/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if cfg.ContentAPIURL == "" {
		log.Fatal().Msg("CONTENT_API_URL is required")
	}

	client := cms.NewClient(cfg.ContentAPIURL, cfg.ContentAPIToken)
	posts := service.NewPostService(client, cfg.PageSize)
	api := handler.NewAPI(posts, cfg.SiteName)

	r := router.SetupRouter(cfg, api)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
