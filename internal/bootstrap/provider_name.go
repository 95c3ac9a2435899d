package bootstrap

import (
	"strings"

	"github.com/ajuarez99/ballknowers/internal/config"
)

// normalizeProviderName lower-cases the configured provider mode, defaulting to live.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return config.ProviderLive
	}
	return name
}
