package types

import (
	"strings"

	"github.com/campusconnect-dev/campusconnect/internal/config"
)

const ContextUserKey = "user"

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AllowedOrigins is consulted by the CORS layer and the websocket origin
// check. It starts at the development defaults and is rebuilt from the
// parsed configuration at startup.
var AllowedOrigins = append([]string{}, defaultOrigins...)

// InitAllowedOrigins extends the default origins with the configured
// client URL and any extra comma-separated origins. Called once, before
// the router is built.
func InitAllowedOrigins(cfg *config.Config) {
	origins := append([]string{}, defaultOrigins...)

	if cfg.ClientURL != "" {
		origins = append(origins, cfg.ClientURL)
	}

	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	AllowedOrigins = origins
}
