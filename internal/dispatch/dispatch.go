// Package dispatch turns a line of user input into a Command, records it in
// history, and drives the Controller operation it names.
package dispatch

import (
	"strconv"
	"strings"

	"github.com/jdb-go/jdb/internal/breakpoint"
	"github.com/jdb-go/jdb/internal/debugger"
	"github.com/jdb-go/jdb/internal/history"
	"github.com/jdb-go/jdb/internal/jdberr"
)

// Command is the parsed form of one input line.
type Command interface {
	isCommand()
}

type Run struct{ Args []string }

type Continue struct{}

type BreakpointCreate struct{ Addr uint64 }

type BreakpointDelete struct{ ID int32 }

type BreakpointEnable struct{ ID int32 }

type BreakpointDisable struct{ ID int32 }

type Quit struct{}

func (Run) isCommand()              {}
func (Continue) isCommand()         {}
func (BreakpointCreate) isCommand()  {}
func (BreakpointDelete) isCommand()  {}
func (BreakpointEnable) isCommand()  {}
func (BreakpointDisable) isCommand() {}
func (Quit) isCommand()             {}

// Result tells the caller whether the session should keep reading commands.
type Result int

const (
	Normal Result = iota
	Exit
)

// Parse splits line on whitespace, lower-cases the verb, resolves aliases,
// and validates arity and argument syntax. An empty line is a ParseError:
// callers resolve it via history replay before calling Parse.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, jdberr.NewParseError("empty command", nil)
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "run", "r":
		return Run{Args: args}, nil

	case "continue", "c":
		if len(args) != 0 {
			return nil, jdberr.NewParseError("continue takes no arguments", nil)
		}
		return Continue{}, nil

	case "break", "b":
		if len(args) != 1 {
			return nil, jdberr.NewParseError("break requires exactly one address", nil)
		}
		addr, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, jdberr.NewParseError("unparseable address", err)
		}
		return BreakpointCreate{Addr: addr}, nil

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		return BreakpointDelete{ID: id}, nil

	case "enable":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		return BreakpointEnable{ID: id}, nil

	case "disable":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		return BreakpointDisable{ID: id}, nil

	case "quit", "q":
		if len(args) != 0 {
			return nil, jdberr.NewParseError("quit takes no arguments", nil)
		}
		return Quit{}, nil

	default:
		return nil, jdberr.NewParseError("unknown command: "+verb, nil)
	}
}

func parseID(args []string) (int32, error) {
	if len(args) != 1 {
		return 0, jdberr.NewParseError("expected exactly one breakpoint id", nil)
	}
	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return 0, jdberr.NewParseError("unparseable breakpoint id", err)
	}
	return int32(id), nil
}

// Dispatcher owns the command history and turns lines into Controller calls.
// target is the executable path configured at startup (the CLI's single
// positional argument): "run"'s own arguments are passed to the program,
// not used to select which program to launch.
type Dispatcher struct {
	hist   *history.History
	target string
}

// New builds a Dispatcher backed by the given history store, launching
// target whenever the user types "run".
func New(hist *history.History, target string) *Dispatcher {
	return &Dispatcher{hist: hist, target: target}
}

// Dispatch resolves an empty line to the last history entry, records the
// resolved line in history before executing it, parses it, and runs it
// against ctrl. A ParseError or a Controller-level error is returned to the
// caller for display; neither one ends the session. An empty line with an
// empty history is a no-op: it replays nothing and reports no error.
func (d *Dispatcher) Dispatch(line string, ctrl *debugger.Controller) (Result, error) {
	if line == "" {
		last, ok := d.hist.LastCommand()
		if !ok {
			return Normal, nil
		}
		line = last
	} else if err := d.hist.Add(line); err != nil {
		return Normal, err
	}

	cmd, err := Parse(line)
	if err != nil {
		return Normal, err
	}

	switch c := cmd.(type) {
	case Run:
		if d.target == "" {
			return Normal, jdberr.NewStateError("no executable configured to run")
		}
		return Normal, ctrl.Launch(d.target, c.Args)

	case Continue:
		if err := ctrl.Resume(); err != nil {
			return Normal, err
		}
		_, err := ctrl.WaitOnSignal()
		return Normal, err

	case BreakpointCreate:
		_, err := ctrl.CreateBreakpoint(breakpoint.VirtualAddress(c.Addr))
		return Normal, err

	case BreakpointDelete:
		return Normal, ctrl.DeleteBreakpoint(breakpoint.ID(c.ID))

	case BreakpointEnable:
		return Normal, ctrl.EnableBreakpoint(breakpoint.ID(c.ID))

	case BreakpointDisable:
		return Normal, ctrl.DisableBreakpoint(breakpoint.ID(c.ID))

	case Quit:
		if err := ctrl.Destroy(); err != nil {
			return Exit, err
		}
		return Exit, nil

	default:
		return Normal, jdberr.NewParseError("unhandled command", nil)
	}
}
