package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/level"
)

func TestLog_WritesAtOrAboveThreshold(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())
	setFlag(t, logCmd, "name", "core.parser")
	setFlag(t, logCmd, "level", "warning")

	if err := runCmd(ctx, logCmd, "could", "not", "read", "file"); err != nil {
		t.Fatalf("log error: %v", err)
	}

	want := "WARNING: [core.parser] could not read file\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLog_DropsBelowThreshold(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())

	if err := runCmd(ctx, logCmd, "hello"); err != nil {
		t.Fatalf("log error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("INFO below WARNING should be dropped, got %q", buf.String())
	}
}

func TestLog_ErrorIsBoxed(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())
	setFlag(t, logCmd, "level", "error")

	if err := runCmd(ctx, logCmd, "boom"); err != nil {
		t.Fatalf("log error: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "│ ERROR: [script] boom │") {
		t.Errorf("expected boxed ERROR line, got:\n%s", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("non-terminal output should carry no escapes, got %q", got)
	}
}

func TestLog_PreprocessesMessage(t *testing.T) {
	buf := captureOutput(t)
	cfg := config.DefaultConfig()
	cfg.Format.PathSeparator = `\`
	ctx := setupSession(t, cfg)
	setFlag(t, logCmd, "level", "critical")
	setFlag(t, logCmd, "name", "io")

	if err := runCmd(ctx, logCmd, `C:\temp\out.txt :warning:`); err != nil {
		t.Fatalf("log error: %v", err)
	}
	if !strings.Contains(buf.String(), "CRITICAL: [io] C:/temp/out.txt ⚠") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLog_InvalidLevel(t *testing.T) {
	captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())
	setFlag(t, logCmd, "level", "loud")

	err := runCmd(ctx, logCmd, "hello")
	if !errors.Is(err, level.ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}
