package report

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestExecGeneratorRelaysStdout(t *testing.T) {
	gen := NewExecGenerator("echo hello report")

	stream, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer stream.Close()

	out, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "hello report" {
		t.Errorf("expected %q, got %q", "hello report", got)
	}
}

func TestExecGeneratorNonZeroExit(t *testing.T) {
	gen := NewExecGenerator("false")

	if _, err := gen.Generate(context.Background()); err == nil {
		t.Error("expected error for non-zero exit")
	}
}

func TestExecGeneratorMissingCommand(t *testing.T) {
	gen := NewExecGenerator("   ")

	if _, err := gen.Generate(context.Background()); err == nil {
		t.Error("expected error for empty command")
	}
}
