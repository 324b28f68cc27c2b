package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacetraveling/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts    *service.PostService
	siteName string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(posts *service.PostService, siteName string) *API {
	return &API{posts: posts, siteName: siteName}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = a.siteName
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
