package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is the config returned for routes that are never limited.
var unlimited = EndpointConfig{Path: "/health", Method: http.MethodGet}

// MatchEndpoint returns the config for path and method, or nil when none
// applies. Exact paths win over prefixes; GET /health is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		cfg := unlimited
		return &cfg
	}

	for i := range configs {
		if configs[i].Path == path && methodMatches(configs[i].Method, method) {
			return &configs[i]
		}
	}
	for i := range configs {
		cfg := &configs[i]
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) && methodMatches(cfg.Method, method) {
			return cfg
		}
	}
	return nil
}

func methodMatches(want, got string) bool {
	return want == "" || want == got
}
