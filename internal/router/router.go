package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spacetraveling/internal/config"
	"github.com/spacetraveling/internal/handler"
	"github.com/spacetraveling/internal/middleware"
)

// SetupRouter configures the gin engine and all public routes.
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("spacetraveling_session", store))

	if cfg.TemplateGlob != "" {
		r.LoadHTMLGlob(cfg.TemplateGlob)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", api.ShowHome)
	r.GET("/posts/page", api.LoadMorePosts)
	r.GET("/post/:slug", api.ShowPostDetail)

	r.GET("/preview", api.EnterPreview)
	r.GET("/preview/exit", api.ExitPreview)

	return r
}
