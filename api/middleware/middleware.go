package middleware

import (
	"movie_discovery/configs"
	"regexp"
	"slices"
)

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)

// CorsAllowedOrigin accepts localhost plus the origins from the env config
// and the dynamic db config.
func CorsAllowedOrigin(origin string) bool {
	if LocalhostRegex.MatchString(origin) {
		return true
	}
	if slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1 {
		return true
	}
	return slices.Index(configs.GetDbConfigs().CorsAllowedOrigins, origin) != -1
}
