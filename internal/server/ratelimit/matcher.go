package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the budget for a request path and method. Exact paths
// win over prefix entries; entries ending in "/" match by prefix, so a
// "/cvs/" entry covers "/cvs/{id}" and "/cvs/{id}/download" alike. Returns
// nil when no entry matches and the global default applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never throttled; load balancers poll it
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
