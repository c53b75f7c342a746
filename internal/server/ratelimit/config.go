package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix when it ends in "/"
	Method string        // HTTP method; empty matches any
	Limit  int           // Requests per Window; zero or less is unlimited
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity; Limit when zero
}

// Defaults used when the environment does not override them.
const (
	DefaultLimit           = 1000
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	DefaultIdleTTL         = time.Hour
)

// LoadConfig reads the limiter configuration from RATE_LIMIT_* variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", DefaultWindow),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		IdleTTL:         getEnvDuration("RATE_LIMIT_IDLE_TTL", DefaultIdleTTL),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(getEnvInt("RATE_LIMIT_PARSE_LIMIT", 60)),
	}
}

// DefaultEndpointConfigs returns the per-route limits. parseLimit caps
// document parses per minute; enhancement is cheaper and gets twice that.
func DefaultEndpointConfigs(parseLimit int) []EndpointConfig {
	burst := max(parseLimit/6, 1)
	return []EndpointConfig{
		{Path: "/parse", Method: http.MethodPost, Limit: parseLimit, Window: time.Minute, Burst: burst},
		{Path: "/parse/stream", Method: http.MethodPost, Limit: parseLimit, Window: time.Minute, Burst: burst},
		{Path: "/enhance", Method: http.MethodPost, Limit: 2 * parseLimit, Window: time.Minute, Burst: 2 * burst},
		{Path: "/parses/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
	}
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
