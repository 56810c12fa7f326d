package main

import (
	"io"
	"strings"
)

// helpRequested returns true if any canonical help token is present.
func helpRequested(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" || a == "help" {
			return true
		}
	}
	return false
}

// versionRequested returns true if any canonical version token is present.
func versionRequested(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-version" {
			return true
		}
	}
	return false
}

// printUsage writes a comprehensive usage guide to w.
func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("texgen — batch-generate zone textures via an OpenAI-compatible Images API\n\n")
	b.WriteString("Usage:\n  texgen [flags]\n\n")
	b.WriteString("A bare run generates every catalog texture missing from the output\n")
	b.WriteString("directory; existing files are skipped, so re-running retries only the\n")
	b.WriteString("missing ones.\n\n")
	b.WriteString("Flags (precedence: flag > env > default):\n")
	b.WriteString("  -out string\n    Output directory (env TEXGEN_OUT_DIR; default public/textures/zones)\n")
	b.WriteString("  -base-url string\n    Images API base URL (env OAI_IMAGE_BASE_URL, then OAI_BASE_URL; default https://api.openai.com/v1)\n")
	b.WriteString("  -api-key string\n    API key (env OAI_API_KEY; falls back to OPENAI_API_KEY; required for generation)\n")
	b.WriteString("  -model string\n    Image model ID (env OAI_IMAGE_MODEL; default gpt-image-1)\n")
	b.WriteString("  -size string\n    Image size WxH, e.g., 1024x1024 (env OAI_IMAGE_SIZE; default 1024x1024)\n")
	b.WriteString("  -quality string\n    Image quality tier passed to the API (env OAI_IMAGE_QUALITY; default medium)\n")
	b.WriteString("  -http-timeout duration\n    HTTP timeout for API and download requests (env OAI_HTTP_TIMEOUT; default 120s)\n")
	b.WriteString("  -only name[,name...]\n    Process only the named catalog entries\n")
	b.WriteString("  -force\n    Regenerate even when the output file exists\n")
	b.WriteString("  -sheet string\n    Write a PDF contact sheet of the run to the given path\n")
	b.WriteString("  -list\n    Print the texture catalog and exit\n")
	b.WriteString("  -dry-run\n    Print the per-texture plan and exit without network calls\n")
	b.WriteString("  -print-config\n    Print resolved config (API key redacted) and exit\n")
	b.WriteString("  --version | -version\n    Print version and exit\n")
	b.WriteString("\nExamples:\n")
	b.WriteString("  # Generate whatever is missing\n")
	b.WriteString("  OPENAI_API_KEY=sk-... texgen\n\n")
	b.WriteString("  # Regenerate two textures and write a review sheet\n")
	b.WriteString("  texgen -only ritual_floor,ritual_wall -force -sheet textures.pdf\n\n")
	b.WriteString("  # Show help\n")
	b.WriteString("  texgen --help\n")
	safeFprintln(w, strings.TrimRight(b.String(), "\n"))
}
