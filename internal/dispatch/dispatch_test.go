package dispatch

import (
	"path/filepath"
	"testing"

	"github.com/jdb-go/jdb/internal/history"
	"github.com/jdb-go/jdb/internal/jdberr"
)

func TestParseAliasesAndArity(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"continue", Continue{}},
		{"c", Continue{}},
		{"break 4198400", BreakpointCreate{Addr: 4198400}},
		{"b 4198400", BreakpointCreate{Addr: 4198400}},
		{"delete 3", BreakpointDelete{ID: 3}},
		{"enable 3", BreakpointEnable{ID: 3}},
		{"disable 3", BreakpointDisable{ID: 3}},
		{"quit", Quit{}},
		{"q", Quit{}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.line)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tc.line, got, tc.want)
		}
	}
}

func TestParseRunCapturesProgramArgs(t *testing.T) {
	cases := []struct {
		line     string
		wantArgs []string
	}{
		{"run arg1 arg2", []string{"arg1", "arg2"}},
		{"r", nil},
	}
	for _, tc := range cases {
		got, err := Parse(tc.line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.line, err)
		}
		run, ok := got.(Run)
		if !ok {
			t.Fatalf("Parse(%q) = %#v, want a Run", tc.line, got)
		}
		if len(run.Args) != len(tc.wantArgs) {
			t.Fatalf("Parse(%q).Args = %v, want %v", tc.line, run.Args, tc.wantArgs)
		}
		for i := range tc.wantArgs {
			if run.Args[i] != tc.wantArgs[i] {
				t.Errorf("Parse(%q).Args[%d] = %q, want %q", tc.line, i, run.Args[i], tc.wantArgs[i])
			}
		}
	}
}

func TestParseRejectsBadArityAndSyntax(t *testing.T) {
	cases := []string{
		"continue extra",
		"break",
		"break notanumber",
		"break 1 2",
		"delete",
		"delete notanumber",
		"quit now",
		"frobnicate",
	}
	for _, line := range cases {
		_, err := Parse(line)
		if err == nil {
			t.Errorf("Parse(%q): expected a parse error", line)
			continue
		}
		if !isParseError(err) {
			t.Errorf("Parse(%q): expected a ParseError, got %T", line, err)
		}
	}
}

func isParseError(err error) bool {
	_, ok := err.(*jdberr.ParseError)
	return ok
}

func TestParseEmptyLineIsAnError(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Parse(\"\") should fail; empty-line replay is the Dispatcher's job, not Parse's")
	}
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	hist, err := history.Open(filepath.Join(t.TempDir(), "history"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	return New(hist, "/bin/true")
}

func TestDispatchEmptyLineWithNoHistoryIsANoOp(t *testing.T) {
	d := newTestDispatcher(t)
	result, err := d.Dispatch("", nil)
	if err != nil {
		t.Errorf("expected no error replaying an empty history, got %v", err)
	}
	if result != Normal {
		t.Errorf("expected Normal, got %v", result)
	}
}

func TestDispatchRunWithoutConfiguredTargetFails(t *testing.T) {
	hist, err := history.Open(filepath.Join(t.TempDir(), "history"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	d := New(hist, "")
	_, err = d.Dispatch("run", nil)
	if err == nil {
		t.Fatal("expected a state error running with no configured target")
	}
}

func TestDispatchRecordsBeforeParsing(t *testing.T) {
	d := newTestDispatcher(t)
	// An unparseable line is still recorded in history before Dispatch
	// reports the parse error, matching the "record then execute" order.
	if _, err := d.Dispatch("frobnicate", nil); err == nil {
		t.Fatal("expected a parse error")
	}
	last, ok := d.hist.LastCommand()
	if !ok || last != "frobnicate" {
		t.Errorf("LastCommand() = (%q, %v), want (\"frobnicate\", true)", last, ok)
	}
}
