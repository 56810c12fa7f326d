package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/hyperifyio/texgen/internal/oai"
	"github.com/hyperifyio/texgen/internal/textures"
)

// runBatch performs the generation run: credential check, directory
// creation, one pass over the selected specs, then report and optional
// contact sheet. Per-texture failures never fail the process; only a
// missing credential or an unusable output directory do.
func runBatch(cfg cliConfig, stdout, stderr io.Writer) int {
	if cfg.apiKey == "" {
		safeFprintln(stderr, "error: no API key configured")
		safeFprintln(stderr, "Set OAI_API_KEY or OPENAI_API_KEY, e.g.: export OPENAI_API_KEY='your-key-here'")
		return 1
	}

	specs := selectedSpecs(cfg)
	safeFprintf(stdout, "Generating zone textures to: %s\n", cfg.outDir)
	safeFprintf(stdout, "Total textures to generate: %d\n\n", len(specs))

	batch := &textures.Batch{
		Client:  oai.NewClient(cfg.baseURL, cfg.apiKey, cfg.httpTimeout),
		OutDir:  cfg.outDir,
		Model:   cfg.model,
		Size:    cfg.size,
		Quality: cfg.quality,
		Force:   cfg.force,
		Log:     stdout,
	}
	results, err := batch.Run(context.Background(), specs)
	if err != nil {
		safeFprintf(stderr, "error: %v\n", err)
		return 1
	}

	safeFprintln(stdout)
	textures.WriteReport(stdout, results)

	if cfg.sheet != "" {
		if err := textures.WriteContactSheet(cfg.sheet, results); err != nil {
			safeFprintf(stderr, "error: %v\n", err)
			return 1
		}
		safeFprintf(stdout, "Contact sheet written to %s\n", cfg.sheet)
	}
	return 0
}

// printCatalog lists the compiled-in texture names and prompts.
func printCatalog(cfg cliConfig, stdout io.Writer) int {
	for _, s := range selectedSpecs(cfg) {
		safeFprintf(stdout, "%s\n    %s\n", s.Name, s.Prompt)
	}
	return 0
}

// printDryRunPlan reports, without any network activity, what a run
// would do per texture given the current output directory contents.
func printDryRunPlan(cfg cliConfig, stdout io.Writer) int {
	for _, s := range selectedSpecs(cfg) {
		path := filepath.Join(cfg.outDir, s.Name+".png")
		if _, err := os.Stat(path); err == nil && !cfg.force {
			safeFprintf(stdout, "skip %s (%s exists)\n", s.Name, path)
		} else {
			safeFprintf(stdout, "generate %s -> %s\n", s.Name, path)
		}
	}
	return 0
}

// printResolvedConfig prints the effective configuration with the API
// key redacted, along with where each networked value came from.
func printResolvedConfig(cfg cliConfig, stdout io.Writer) int {
	safeFprintf(stdout, "out: %s\n", cfg.outDir)
	safeFprintf(stdout, "base-url: %s (source: %s)\n", cfg.baseURL, cfg.baseURLSource)
	key := oai.MaskAPIKeyLast4(cfg.apiKey)
	if key == "" {
		key = "(none)"
	}
	safeFprintf(stdout, "api-key: %s (source: %s)\n", key, cfg.apiKeySource)
	safeFprintf(stdout, "model: %s\n", cfg.model)
	safeFprintf(stdout, "size: %s\n", cfg.size)
	safeFprintf(stdout, "quality: %s\n", cfg.quality)
	safeFprintf(stdout, "http-timeout: %s\n", cfg.httpTimeout)
	safeFprintf(stdout, "force: %v\n", cfg.force)
	return 0
}
