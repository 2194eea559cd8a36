package cobol

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbridge/cardproc/internal/domain"
)

// Config holds runner settings.
type Config struct {
	// BinaryPath is the compiled batch program.
	BinaryPath string
	// InputDelay paces writes to the program's blocking line reads.
	InputDelay time.Duration
	// SessionTimeout bounds one full menu session.
	SessionTimeout time.Duration
}

// Runner executes one interactive session of the batch program per call.
// Sessions are never shared: every operation gets its own process.
type Runner struct {
	cfg    Config
	logger zerolog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg Config, logger zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Available reports whether the batch program exists and is executable. It
// never invokes the program, and the result is not cached: the binary can be
// deployed or removed between requests.
func (r *Runner) Available() bool {
	info, err := os.Stat(r.cfg.BinaryPath)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode()&0o111 != 0
}

// BinaryPath returns the configured program path.
func (r *Runner) BinaryPath() string {
	return r.cfg.BinaryPath
}

// Run spawns the program, writes each input as its own line spaced by the
// configured delay, closes stdin one more delay after the last input, and
// returns the captured stdout once the process exits cleanly. The program
// reads lines blockingly and prints no parseable prompt, so pacing is the
// only synchronization available. A non-zero exit fails with the captured
// stderr; exceeding the session timeout fails with a timeout error.
func (r *Runner) Run(ctx context.Context, inputs ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.SessionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.cfg.BinaryPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("%w: stdin pipe: %v", domain.ErrExternalProcess, err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: start %s: %v", domain.ErrExternalProcess, r.cfg.BinaryPath, err)
	}

	go r.feed(ctx, stdin, inputs)

	err = cmd.Wait()
	elapsed := time.Since(start)

	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		r.logger.Warn().Dur("elapsed", elapsed).Msg("batch program session timed out")
		return "", fmt.Errorf("%w after %s", domain.ErrExternalTimeout, r.cfg.SessionTimeout)
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s", domain.ErrExternalProcess, detail)
	}

	r.logger.Debug().Dur("elapsed", elapsed).Int("stdout_bytes", stdout.Len()).Msg("batch program session completed")
	return stdout.String(), nil
}

// feed writes the inputs with pacing and closes stdin afterwards.
func (r *Runner) feed(ctx context.Context, stdin io.WriteCloser, inputs []string) {
	defer stdin.Close()

	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.cfg.InputDelay):
		}
		if _, err := io.WriteString(stdin, input+"\n"); err != nil {
			// The process exited early; Wait surfaces the real error.
			return
		}
	}

	select {
	case <-ctx.Done():
	case <-time.After(r.cfg.InputDelay):
	}
}
