package oai

import (
	"os"
	"strings"
)

// DefaultBaseURL is the stock OpenAI endpoint used when nothing else
// is configured.
const DefaultBaseURL = "https://api.openai.com/v1"

// ImageConfig holds resolved configuration for the Images API endpoint.
type ImageConfig struct {
	BaseURL string
	APIKey  string
}

// ResolveImageConfig determines the effective image configuration using
// the precedence: flag > env > default. The base URL reads
// OAI_IMAGE_BASE_URL then OAI_BASE_URL before falling back to
// DefaultBaseURL; the API key reads OAI_API_KEY then OPENAI_API_KEY.
// The returned sources describe where each field came from:
// "flag" | "env:<VAR>" | "default" | "empty".
func ResolveImageConfig(flagBaseURL, flagAPIKey string) (cfg ImageConfig, baseSource, keySource string) {
	if s := strings.TrimSpace(flagBaseURL); s != "" {
		cfg.BaseURL = s
		baseSource = "flag"
	} else if s := strings.TrimSpace(os.Getenv("OAI_IMAGE_BASE_URL")); s != "" {
		cfg.BaseURL = s
		baseSource = "env:OAI_IMAGE_BASE_URL"
	} else if s := strings.TrimSpace(os.Getenv("OAI_BASE_URL")); s != "" {
		cfg.BaseURL = s
		baseSource = "env:OAI_BASE_URL"
	} else {
		cfg.BaseURL = DefaultBaseURL
		baseSource = "default"
	}

	if s := strings.TrimSpace(flagAPIKey); s != "" {
		cfg.APIKey = s
		keySource = "flag"
	} else if s := strings.TrimSpace(os.Getenv("OAI_API_KEY")); s != "" {
		cfg.APIKey = s
		keySource = "env:OAI_API_KEY"
	} else if s := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); s != "" {
		cfg.APIKey = s
		keySource = "env:OPENAI_API_KEY"
	} else {
		cfg.APIKey = ""
		keySource = "empty"
	}
	return
}

// MaskAPIKeyLast4 returns a redacted representation of an API key
// showing only the last 4 characters. Empty input returns an empty
// string.
func MaskAPIKeyLast4(key string) string {
	k := strings.TrimSpace(key)
	if k == "" {
		return ""
	}
	if len(k) <= 4 {
		return "****" + k
	}
	return "****" + k[len(k)-4:]
}
