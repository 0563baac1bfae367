// Binary jdb is a native, terminal-based debugger for Linux processes.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jdb-go/jdb/internal/breakpoint"
	"github.com/jdb-go/jdb/internal/config"
	"github.com/jdb-go/jdb/internal/dbglog"
	"github.com/jdb-go/jdb/internal/debugger"
	"github.com/jdb-go/jdb/internal/dispatch"
	"github.com/jdb-go/jdb/internal/history"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&debugCmd{}, "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// debugCmd is the one debugging subcommand (beside the built-in help and
// flags): attach to or launch a target and drop into the interactive
// command loop.
type debugCmd struct {
	pid         int
	historyFile string
	logFile     string
	logFormat   string
	debug       bool
	disableASLR bool
}

func (*debugCmd) Name() string     { return "debug" }
func (*debugCmd) Synopsis() string { return "launch or attach to a process and debug it" }
func (*debugCmd) Usage() string {
	return `debug [flags] <executable>
  Launch <executable> under trace control, or attach to an existing
  process with -p/--pid, and read commands from stdin.
`
}

func (c *debugCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pid, "pid", 0, "attach to an existing process instead of launching one")
	f.IntVar(&c.pid, "p", 0, "shorthand for -pid")
	f.StringVar(&c.historyFile, "history-file", "", "override the default command history path")
	f.StringVar(&c.logFile, "log-file", "", "override the default log path")
	f.StringVar(&c.logFormat, "log-format", "", `"text" or "json"`)
	f.BoolVar(&c.debug, "debug", false, "enable trace-level logging")
	f.BoolVar(&c.disableASLR, "disable-aslr", false, "disable ASLR for a launched child")
}

func (c *debugCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	target := f.Arg(0)

	opts := config.Options{
		DisableASLR: c.disableASLR,
		HistoryFile: c.historyFile,
		LogFile:     c.logFile,
		LogFormat:   c.logFormat,
		Debug:       c.debug,
	}
	if c.pid > 0 {
		opts.Launch = config.LaunchType{Kind: config.LaunchByPID, PID: c.pid}
	} else {
		opts.Launch = config.LaunchType{Kind: config.LaunchByPath, Path: target}
	}

	opts, err := config.Resolve(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	opts = defaults.Apply(opts, c.disableASLR)

	if opts.Launch.Kind == config.LaunchByPath {
		if err := config.VerifyExecutable(opts.Launch.Path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if opts.LogFile != "" {
		logFile, err := os.OpenFile(opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer logFile.Close()
		format := dbglog.FormatText
		if opts.LogFormat == "json" {
			format = dbglog.FormatJSON
		}
		dbglog.Configure(logFile, format, opts.Debug)
	}

	hist, err := history.Open(opts.HistoryFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ctrl := debugger.New(opts)
	disp := dispatch.New(hist, opts.Launch.Path)

	if opts.Launch.Kind == config.LaunchByPID {
		if err := ctrl.AttachPID(opts.Launch.PID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	for _, addr := range defaults.Breakpoints {
		if _, err := ctrl.CreateBreakpoint(breakpoint.VirtualAddress(addr)); err != nil {
			dbglog.Warnf("default breakpoint at 0x%x: %v", addr, err)
		}
	}

	if runLoop(ctrl, disp) {
		return subcommands.ExitSuccess
	}
	return subcommands.ExitFailure
}

// runLoop reads one command per line from stdin until quit or EOF. It
// reports ok=false only when quit's teardown returned an error; EOF
// reports ok=true.
func runLoop(ctrl *debugger.Controller, disp *dispatch.Dispatcher) bool {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		ctrl.DrainOutput()
		result, err := disp.Dispatch(scanner.Text(), ctrl)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if result == dispatch.Exit {
			return err == nil
		}
	}
	return true
}
