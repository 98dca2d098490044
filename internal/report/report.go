// Package report produces the plain-text task status report. The
// production generator shells out to an external command (by default
// the reporter binary shipped in cmd/reporter) and relays its stdout.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Generator yields one finite report stream per call. The stream is
// not restartable; callers read it to EOF and close it.
type Generator interface {
	Generate(ctx context.Context) (io.ReadCloser, error)
}

// ExecGenerator runs an external command and returns its stdout as the
// report. The whole output is collected before the stream is handed
// back, so a non-zero exit never truncates a response mid-body.
type ExecGenerator struct {
	name string
	args []string
}

// NewExecGenerator splits command on whitespace into the program name
// and its arguments.
func NewExecGenerator(command string) *ExecGenerator {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &ExecGenerator{}
	}
	return &ExecGenerator{name: fields[0], args: fields[1:]}
}

func (g *ExecGenerator) Generate(ctx context.Context) (io.ReadCloser, error) {
	if g.name == "" {
		return nil, fmt.Errorf("no report command configured")
	}

	cmd := exec.CommandContext(ctx, g.name, g.args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("report command: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("report command: %w", err)
	}

	return io.NopCloser(bytes.NewReader(out)), nil
}
