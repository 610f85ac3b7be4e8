package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with fresh flag values and a temporary
// history database
func execute(t *testing.T, historyPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SIGFIG_CONFIG", "")
	t.Setenv("SIGFIG_HISTORY_PATH", historyPath)

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestCountCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, db, "count", "0.004560", "100.")
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	want := "0.004560 → 4 signifikante Stelle(n)\n100. → 3 signifikante Stelle(n)\n"
	if out != want {
		t.Errorf("count output = %q, want %q", out, want)
	}

	if _, err := execute(t, db, "count", "abc"); err == nil {
		t.Error("count abc: expected error")
	}
}

func TestRoundCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"round", "--figures", "3", "123.456"}, "123\n"},
		{[]string{"round", "-n", "2", "0.004560"}, "0.0046\n"},
		{[]string{"round", "--places", "2", "2.5"}, "2.50\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, db, tt.args...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, err := execute(t, db, "round", "1.5"); err == nil {
		t.Error("round without target: expected error")
	}
	if _, err := execute(t, db, "round", "-n", "2", "-d", "1", "1.5"); err == nil {
		t.Error("round with both targets: expected error")
	}
}

func TestEvalAndCombineCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, db, "eval", "--postfix", "2^3^2")
	if err != nil {
		t.Fatalf("eval error = %v", err)
	}
	if out != "Postfix: 2 3 2 ^ ^\n512\n" {
		t.Errorf("eval output = %q", out)
	}

	out, err = execute(t, db, "combine", "4.5", "x", "2.10")
	if err != nil {
		t.Fatalf("combine error = %v", err)
	}
	if out != "4.5 × 2.10 = 9.5\n" {
		t.Errorf("combine output = %q", out)
	}

	if _, err := execute(t, db, "eval", "(1+2"); err == nil {
		t.Error("eval (1+2: expected error")
	}
}

func TestHistoryCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	if _, err := execute(t, db, "eval", "1+1"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, db, "count", "1.20"); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, db, "--json", "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	var entries []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(entries) != 2 || entries[0].Text != "Count: 1.20 → 3 sig figs" || entries[1].Text != "1+1 = 2" {
		t.Errorf("entries = %+v", entries)
	}

	if _, err := execute(t, db, "history", "clear"); err != nil {
		t.Fatal(err)
	}
	out, _ = execute(t, db, "history")
	if out != "Verlauf ist leer.\n" {
		t.Errorf("after clear = %q", out)
	}
}

func TestNoHistoryFlag(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	if _, err := execute(t, db, "--no-history", "eval", "1+1"); err != nil {
		t.Fatal(err)
	}
	out, _ := execute(t, db, "history")
	if out != "Verlauf ist leer.\n" {
		t.Errorf("history = %q", out)
	}
}

func TestExplainCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := execute(t, db, "explain", "4.5", "*", "2.10")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}
	if !strings.HasPrefix(out, "9.5  (unrounded: 9.45") {
		t.Errorf("explain output = %q", out)
	}

	if _, err := execute(t, db, "explain", "1", "2"); err == nil {
		t.Error("explain with two args: expected error")
	}

	// explain does not record anything
	out, _ = execute(t, db, "history")
	if out != "Verlauf ist leer.\n" {
		t.Errorf("history = %q", out)
	}
}

func TestSelfTest(t *testing.T) {
	for _, r := range selfTest() {
		if !r.OK {
			t.Errorf("self-test %q: want %s, got %s", r.Case, r.Want, r.Got)
		}
	}
}
