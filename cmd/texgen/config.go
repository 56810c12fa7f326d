package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/hyperifyio/texgen/internal/oai"
	"github.com/hyperifyio/texgen/internal/textures"
)

// Defaults mirror the original asset pipeline: textures land under the
// repo-relative public/ tree and the model matches the prompts' style.
const (
	defaultOutDir  = "public/textures/zones"
	defaultModel   = "gpt-image-1"
	defaultSize    = "1024x1024"
	defaultQuality = "medium"
	defaultTimeout = 120 * time.Second
)

var sizeRe = regexp.MustCompile(`^\d{3,4}x\d{3,4}$`)

// cliConfig holds user-supplied configuration resolved from flags and env.
type cliConfig struct {
	outDir      string
	baseURL     string
	apiKey      string
	model       string
	size        string
	quality     string
	httpTimeout time.Duration
	only        []string
	force       bool
	sheet       string
	list        bool
	dryRun      bool
	printConfig bool
	// Sources for -print-config: "flag" | "env:<VAR>" | "default" | "empty"
	baseURLSource string
	apiKeySource  string
	// parseError carries a human-readable message when parsing fails.
	parseError string
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// parseFlags parses command-line flags and environment variables with
// the precedence flag > env > default. It returns a non-zero exit code
// on usage errors, with cfg.parseError set.
func parseFlags(args []string) (cliConfig, int) {
	var cfg cliConfig

	fs := flag.NewFlagSet("texgen", flag.ContinueOnError)
	// Silence automatic usage/errors; we handle messaging ourselves.
	fs.SetOutput(io.Discard)

	var flagBaseURL, flagAPIKey, only string
	fs.StringVar(&cfg.outDir, "out", getEnv("TEXGEN_OUT_DIR", defaultOutDir), "Output directory for generated textures")
	fs.StringVar(&flagBaseURL, "base-url", "", "Images API base URL (env OAI_IMAGE_BASE_URL, then OAI_BASE_URL)")
	fs.StringVar(&flagAPIKey, "api-key", "", "API key (env OAI_API_KEY; falls back to OPENAI_API_KEY)")
	fs.StringVar(&cfg.model, "model", getEnv("OAI_IMAGE_MODEL", defaultModel), "Image model ID")
	fs.StringVar(&cfg.size, "size", getEnv("OAI_IMAGE_SIZE", defaultSize), "Image size WxH, e.g., 1024x1024")
	fs.StringVar(&cfg.quality, "quality", getEnv("OAI_IMAGE_QUALITY", defaultQuality), "Image quality tier passed to the API")
	fs.StringVar(&only, "only", "", "Comma-separated subset of catalog names to process")
	fs.BoolVar(&cfg.force, "force", false, "Regenerate even when the output file exists")
	fs.StringVar(&cfg.sheet, "sheet", "", "Write a PDF contact sheet of the run to the given path")
	fs.BoolVar(&cfg.list, "list", false, "Print the texture catalog and exit")
	fs.BoolVar(&cfg.dryRun, "dry-run", false, "Print the per-texture plan and exit without network calls")
	fs.BoolVar(&cfg.printConfig, "print-config", false, "Print resolved config and exit")
	fs.DurationVar(&cfg.httpTimeout, "http-timeout", envDuration("OAI_HTTP_TIMEOUT", defaultTimeout), "HTTP timeout for API and download requests")

	if err := fs.Parse(args); err != nil {
		cfg.parseError = "error: " + err.Error()
		return cfg, 2
	}
	if fs.NArg() > 0 {
		cfg.parseError = fmt.Sprintf("error: unexpected argument %q", fs.Arg(0))
		return cfg, 2
	}
	if !sizeRe.MatchString(cfg.size) {
		cfg.parseError = fmt.Sprintf("error: -size %q must match WxH, e.g., 1024x1024", cfg.size)
		return cfg, 2
	}
	if strings.TrimSpace(cfg.outDir) == "" {
		cfg.parseError = "error: -out must not be empty"
		return cfg, 2
	}

	img, baseSrc, keySrc := oai.ResolveImageConfig(flagBaseURL, flagAPIKey)
	cfg.baseURL = img.BaseURL
	cfg.apiKey = img.APIKey
	cfg.baseURLSource = baseSrc
	cfg.apiKeySource = keySrc

	if s := strings.TrimSpace(only); s != "" {
		for _, name := range strings.Split(s, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := textures.SpecByName(name); !ok {
				cfg.parseError = fmt.Sprintf("error: unknown texture name %q (see -list)", name)
				return cfg, 2
			}
			cfg.only = append(cfg.only, name)
		}
	}
	return cfg, 0
}

// envDuration parses a duration from env, falling back to def on
// absence or parse failure.
func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// selectedSpecs returns the catalog narrowed to -only, preserving
// catalog order; an empty -only selects everything.
func selectedSpecs(cfg cliConfig) []textures.Spec {
	all := textures.Catalog()
	if len(cfg.only) == 0 {
		return all
	}
	want := make(map[string]bool, len(cfg.only))
	for _, n := range cfg.only {
		want[n] = true
	}
	out := make([]textures.Spec, 0, len(cfg.only))
	for _, s := range all {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out
}
