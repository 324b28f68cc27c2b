package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr      string
	Port            string
	ContentAPIURL   string
	ContentAPIToken string
	SessionSecret   string
	GinMode         string
	SiteName        string
	SiteBaseURL     string
	PageSize        int
	TemplateGlob    string
}

// Load reads the application configuration from environment variables,
// falling back to safe defaults for everything but the content store
// credentials. A .env file is honored when present.
func Load() AppConfig {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "spacetraveling-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteName := strings.TrimSpace(os.Getenv("SITE_NAME"))
	if siteName == "" {
		siteName = "spacetraveling"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "http://localhost:" + port
	}

	pageSize := 6
	if raw := strings.TrimSpace(os.Getenv("PAGE_SIZE")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/templates/*.html"
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		ContentAPIURL:   strings.TrimSpace(os.Getenv("CONTENT_API_URL")),
		ContentAPIToken: strings.TrimSpace(os.Getenv("CONTENT_API_TOKEN")),
		SessionSecret:   sessionSecret,
		GinMode:         ginMode,
		SiteName:        siteName,
		SiteBaseURL:     siteBaseURL,
		PageSize:        pageSize,
		TemplateGlob:    templateGlob,
	}
}
