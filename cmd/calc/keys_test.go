package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCalc(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// Every accepted key prints the resulting display; absorbed keys print
// nothing; '=' prints the formatted result it carries forward.
func TestKeysPrintsDisplayAfterEachAcceptedKey(t *testing.T) {
	stdout, _, err := runCalc(t, "keys", "12..3+4=")
	if err != nil {
		t.Fatalf("keys replay error: %v", err)
	}

	want := []string{"1", "12", "12.", "12.3", "12.3+", "12.3+4", "16.3"}
	got := strings.Fields(stdout)

	if len(got) != len(want) {
		t.Fatalf("expected %d display lines, got %d: %q", len(want), len(got), stdout)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestKeysDivisionByZeroResetsDisplay(t *testing.T) {
	stdout, stderr, err := runCalc(t, "keys", "5/0=3")
	if err != nil {
		t.Fatalf("keys replay error: %v", err)
	}

	if !strings.Contains(stderr, "Error: Division by zero") {
		t.Fatalf("expected division-by-zero message on stderr, got %q", stderr)
	}

	// display resets after the failed '=', then takes the '3'
	lines := strings.Fields(stdout)
	if len(lines) == 0 || lines[len(lines)-1] != "3" {
		t.Fatalf("expected final display line %q, got %q", "3", stdout)
	}
}

func TestEvalPrintsFormattedResult(t *testing.T) {
	stdout, _, err := runCalc(t, "eval", "2+3*4")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if strings.TrimSpace(stdout) != "20" {
		t.Fatalf("expected %q, got %q", "20", stdout)
	}
}

func TestEvalFailsOnInvalidExpression(t *testing.T) {
	stdout, stderr, err := runCalc(t, "eval", "5/")
	if err == nil {
		t.Fatal("expected an error for a trailing operator")
	}

	if strings.TrimSpace(stdout) != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Error") {
		t.Fatalf("expected error message on stderr, got %q", stderr)
	}
}
