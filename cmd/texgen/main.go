package main

import (
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(cliMain(os.Args[1:], os.Stdout, os.Stderr))
}

// cliMain is a testable entrypoint for the CLI. It accepts argv
// (excluding program name) and writers for stdout/stderr, and returns
// the intended process exit code.
func cliMain(args []string, stdout io.Writer, stderr io.Writer) int {
	// Handle help flags prior to any parsing/validation or side effects
	if helpRequested(args) {
		printUsage(stdout)
		return 0
	}
	// Handle version flags prior to parsing/validation
	if versionRequested(args) {
		printVersion(stdout)
		return 0
	}

	cfg, exitOn := parseFlags(args)
	if exitOn != 0 {
		if strings.TrimSpace(cfg.parseError) != "" {
			safeFprintln(stderr, cfg.parseError)
		}
		printUsage(stderr)
		return exitOn
	}
	if cfg.list {
		return printCatalog(cfg, stdout)
	}
	if cfg.printConfig {
		return printResolvedConfig(cfg, stdout)
	}
	if cfg.dryRun {
		return printDryRunPlan(cfg, stdout)
	}
	return runBatch(cfg, stdout, stderr)
}
