package textures

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyperifyio/texgen/internal/oai"
)

// ImageClient is the slice of the Images API the batch needs. It is
// satisfied by *oai.Client.
type ImageClient interface {
	CreateImage(ctx context.Context, req oai.ImagesRequest) (oai.ImagesResponse, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Outcome is the terminal state of one spec within a run.
type Outcome string

const (
	// OutcomeSkipped means the output file already existed; it is
	// left byte-untouched and counts as success.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSaved means a fresh image was generated and written.
	OutcomeSaved Outcome = "saved"
	// OutcomeFailed means the request, download, decode, or write
	// failed; the batch continues with the next spec.
	OutcomeFailed Outcome = "failed"
)

// Result records what happened to one spec. Err is set only for
// OutcomeFailed; Bytes only for OutcomeSaved.
type Result struct {
	Name    string
	Outcome Outcome
	Path    string
	Bytes   int
	Err     error
}

// Batch generates the missing textures sequentially. Presence of
// <OutDir>/<name>.png is the only state consulted: existing files are
// never overwritten or validated unless Force is set.
type Batch struct {
	Client  ImageClient
	OutDir  string
	Model   string
	Size    string
	Quality string
	Force   bool
	// Log receives the human-readable progress lines. Nil discards.
	Log io.Writer
}

// OutputPath returns the deterministic artifact path for a texture name.
func (b *Batch) OutputPath(name string) string {
	return filepath.Join(b.OutDir, name+".png")
}

// Run processes specs in order and returns exactly one Result per
// spec. The output directory is created up front; a failure to create
// it is returned before any generation is attempted.
func (b *Batch) Run(ctx context.Context, specs []Spec) ([]Result, error) {
	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", b.OutDir, err)
	}
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		results = append(results, b.runOne(ctx, spec))
	}
	return results, nil
}

func (b *Batch) runOne(ctx context.Context, spec Spec) Result {
	path := b.OutputPath(spec.Name)
	if !b.Force {
		if _, err := os.Stat(path); err == nil {
			b.logf("  [SKIP] %s.png already exists\n", spec.Name)
			return Result{Name: spec.Name, Outcome: OutcomeSkipped, Path: path}
		}
	}

	b.logf("  [GEN] %s...\n", spec.Name)
	n, err := b.generate(ctx, spec, path)
	if err != nil {
		b.logf("  [ERR] Failed to generate %s: %v\n", spec.Name, err)
		return Result{Name: spec.Name, Outcome: OutcomeFailed, Path: path, Err: err}
	}
	b.logf("  [OK] Saved %s.png\n", spec.Name)
	return Result{Name: spec.Name, Outcome: OutcomeSaved, Path: path, Bytes: n}
}

// generate performs the single request for one spec and persists the
// image, preferring the URL form of the response over inline base64.
func (b *Batch) generate(ctx context.Context, spec Spec, path string) (int, error) {
	resp, err := b.Client.CreateImage(ctx, oai.ImagesRequest{
		Model:   b.Model,
		Prompt:  spec.Prompt,
		N:       1,
		Size:    b.Size,
		Quality: b.Quality,
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 {
		return 0, errors.New("no image data in response")
	}

	var img []byte
	switch d := resp.Data[0]; {
	case d.URL != "":
		img, err = b.Client.Download(ctx, d.URL)
		if err != nil {
			return 0, err
		}
	case d.B64JSON != "":
		img, err = base64.StdEncoding.DecodeString(d.B64JSON)
		if err != nil {
			return 0, fmt.Errorf("decode b64 image: %w", err)
		}
	default:
		return 0, errors.New("no image data in response")
	}

	if err := writeFileAtomic(path, img, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(img), nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a crashed run never leaves a
// truncated texture behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		_ = tmp.Close()
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	cleanup = false
	return nil
}

// Summarize counts the results that ended as success (saved or
// skipped) against the total.
func Summarize(results []Result) (succeeded, total int) {
	for _, r := range results {
		if r.Outcome == OutcomeSaved || r.Outcome == OutcomeSkipped {
			succeeded++
		}
	}
	return succeeded, len(results)
}

func (b *Batch) logf(format string, a ...any) {
	if b.Log == nil {
		return
	}
	if _, err := fmt.Fprintf(b.Log, format, a...); err != nil {
		return
	}
}
