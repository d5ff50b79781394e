package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/reelcrew/reelcrew/internal/platform/config"
)

// TestExitfTerminatesWithCode1 re-runs the test binary as a subprocess
// because os.Exit cannot be intercepted in-process, then checks the exit
// code and the stderr output.
func TestExitfTerminatesWithCode1(t *testing.T) {
	if os.Getenv("EXITF_IN_SUBPROCESS") == "1" {
		config.Exitf("startup failed: %s", "bad address")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfTerminatesWithCode1$")
	cmd.Env = append(os.Environ(), "EXITF_IN_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "startup failed: bad address") {
		t.Fatalf("expected output to contain the message, got %q", string(out))
	}
}
