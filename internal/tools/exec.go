package tools

import (
	"context"
	"os"
	"os/exec"
	"time"
)

// probeTimeout bounds each tesseract invocation made by CheckTesseract.
const probeTimeout = 3 * time.Second

// probe runs a short-lived tesseract subcommand and returns its combined
// output. tesseract prints --version to stderr on some builds, so both
// streams are read.
func probe(ctx context.Context, bin string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = append(os.Environ(), "OMP_THREAD_LIMIT=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return string(out), err
}
