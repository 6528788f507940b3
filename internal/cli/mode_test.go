package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

func TestModeVerbose_PersistsAcrossInvocations(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())

	if err := runCmd(ctx, modeVerboseCmd); err != nil {
		t.Fatalf("mode verbose error: %v", err)
	}
	if !strings.Contains(buf.String(), "Verbose mode enabled (level INFO)") {
		t.Errorf("output = %q", buf.String())
	}
	if _, err := os.Stat(config.SessionFile()); err != nil {
		t.Fatalf("session file not written: %v", err)
	}

	next := sessionlog.FromContext(newInvocation(t))
	if got := next.Root().GetLevel(); got != level.Info {
		t.Errorf("next invocation level = %v, want INFO", got)
	}
	if !next.Flags().Verbose {
		t.Error("next invocation should see the verbose flag")
	}
}

func TestModeDebug_JSON(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())
	setGlobal(t, &jsonOutput, true)

	if err := runCmd(ctx, modeDebugCmd); err != nil {
		t.Fatalf("mode debug error: %v", err)
	}

	var res display.ActionResultJSON
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if !res.Success || res.Level != level.Debug {
		t.Errorf("result = %+v, want success at DEBUG", res)
	}
}

func TestModeReset_NextInvocationUsesStaticDefault(t *testing.T) {
	captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())

	if err := runCmd(ctx, modeDebugCmd); err != nil {
		t.Fatal(err)
	}

	// The second run starts at DEBUG, so its own reset lands there too.
	second := newInvocation(t)
	if err := runCmd(second, modeResetCmd); err != nil {
		t.Fatal(err)
	}
	if got := sessionlog.FromContext(second).Root().GetLevel(); got != level.Debug {
		t.Errorf("reset level in second run = %v, want its runtime default DEBUG", got)
	}

	third := sessionlog.FromContext(newInvocation(t))
	if got := third.Root().GetLevel(); got != level.Warning {
		t.Errorf("third run level = %v, want WARNING", got)
	}
	if f := third.Flags(); f.Verbose || f.Debug {
		t.Errorf("flags = %+v, want both cleared", f)
	}
}

func TestMode_EnvStore(t *testing.T) {
	captureOutput(t)
	setGlobal(t, &storeKind, config.StoreEnv)
	t.Setenv("hostlog_verboseISC", "")
	ctx := setupSession(t, config.DefaultConfig())

	if err := runCmd(ctx, modeVerboseCmd); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("hostlog_verboseISC"); got != "true" {
		t.Errorf("hostlog_verboseISC = %q, want true", got)
	}
}

func TestMode_Quiet(t *testing.T) {
	buf := captureOutput(t)
	ctx := setupSession(t, config.DefaultConfig())
	setGlobal(t, &quiet, true)

	if err := runCmd(ctx, modeDebugCmd); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "DEBUG\n" {
		t.Errorf("output = %q, want %q", got, "DEBUG\n")
	}
}
