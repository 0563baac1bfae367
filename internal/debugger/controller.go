//go:build linux

// Package debugger implements the top-level state machine that wires the
// register, breakpoint, PTY, and inferior packages together behind the
// command surface a dispatcher drives.
package debugger

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/cenkalti/backoff"
	"golang.org/x/sys/unix"

	"github.com/jdb-go/jdb/internal/breakpoint"
	"github.com/jdb-go/jdb/internal/config"
	"github.com/jdb-go/jdb/internal/dbglog"
	"github.com/jdb-go/jdb/internal/inferior"
	"github.com/jdb-go/jdb/internal/jdberr"
	"github.com/jdb-go/jdb/internal/pty"
	"github.com/jdb-go/jdb/internal/registers"
)

// State is one of the five states a controller's tracee can be in.
type State int

const (
	Unknown State = iota
	Stopped
	Running
	Exited
	Terminated
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Terminated:
		return "terminated"
	default:
		return "invalid"
	}
}

const outputRingCapacity = 500

// Controller is the single owner of one debug session's state: at most one
// live Inferior, the most recent register Snapshot, and the set of
// user-declared breakpoints (which outlive any one Inferior across
// relaunch).
type Controller struct {
	opts     config.Options
	state    State
	launch   config.LaunchType
	inf      *inferior.Inferior
	snap     *registers.Snapshot
	cmd      *exec.Cmd
	attached bool

	breakpoints map[breakpoint.ID]*breakpoint.Site
	byAddress   map[breakpoint.VirtualAddress]breakpoint.ID

	output []string
}

// New creates a controller in State Unknown, owning no inferior.
func New(opts config.Options) *Controller {
	return &Controller{
		opts:        opts,
		state:       Unknown,
		breakpoints: make(map[breakpoint.ID]*breakpoint.Site),
		byAddress:   make(map[breakpoint.VirtualAddress]breakpoint.ID),
	}
}

func (c *Controller) State() State { return c.state }

// Launch forks+execs target with the given args, wires it to a fresh PTY,
// traces it, and waits for the initial stop. ASLR is disabled for the child
// when configured. Calling Launch while already Running is a no-op.
func (c *Controller) Launch(target string, args []string) error {
	if c.state == Running {
		return nil
	}

	channel, err := pty.Open()
	if err != nil {
		return err
	}

	argv0 := target
	cmdArgs := args
	if c.opts.DisableASLR {
		argv0, cmdArgs = wrapDisableASLR(target, args)
	}

	cmd := exec.Command(argv0, cmdArgs...)
	cmd.Stdin = channel.Slave()
	cmd.Stdout = channel.Slave()
	cmd.Stderr = channel.Slave()
	cmd.SysProcAttr = &unix.SysProcAttr{
		Ptrace:  true,
		Setsid:  true,
		Setctty: true,
	}

	if err := cmd.Start(); err != nil {
		channel.Stop()
		return jdberr.NewSyscallError("exec", err)
	}

	c.cmd = cmd
	c.launch = config.LaunchType{Kind: config.LaunchByPath, Path: target}
	c.inf = inferior.New(cmd.Process.Pid, channel)
	c.attached = false

	if _, err := c.WaitOnSignal(); err != nil {
		return err
	}

	for _, site := range c.breakpoints {
		if site.IsEnabled() {
			if err := c.inf.EnableBreakpointSite(site); err != nil {
				return err
			}
		}
	}

	return nil
}

// wrapDisableASLR re-targets argv0 through setarch -R, the userspace
// equivalent of calling personality(ADDR_NO_RANDOMIZE) before exec when the
// caller has no hook into the forked child's pre-exec code path.
func wrapDisableASLR(target string, args []string) (string, []string) {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "riscv64":
		arch = "riscv64"
	}
	wrapped := append([]string{arch, "-R", target}, args...)
	return "setarch", wrapped
}

// AttachPID attaches to an already-running process instead of launching a
// new one. No PTY, no output reader. A no-op if already Running.
func (c *Controller) AttachPID(pid int) error {
	if c.state == Running {
		return nil
	}
	if err := unix.PtraceAttach(pid); err != nil {
		return jdberr.NewSyscallError("PTRACE_ATTACH", err)
	}

	c.launch = config.LaunchType{Kind: config.LaunchByPID, PID: pid}
	c.inf = inferior.New(pid, nil)
	c.attached = true

	_, err := c.WaitOnSignal()
	return err
}

// Resume continues the tracee. Valid from Stopped or Running (idempotent
// when already Running); invalidates the current snapshot.
func (c *Controller) Resume() error {
	if c.state != Stopped && c.state != Running {
		return jdberr.NewStateError("cannot resume: no stopped or running inferior")
	}
	if c.state == Running {
		return nil
	}
	if err := unix.PtraceCont(c.inf.Pid, 0); err != nil {
		return jdberr.NewSyscallError("PTRACE_CONT", err)
	}
	c.state = Running
	c.snap = nil
	return nil
}

// WaitOnSignal blocks until the tracee's state changes, classifies the
// result, and on a transition into Stopped refreshes the register snapshot.
func (c *Controller) WaitOnSignal() (unix.WaitStatus, error) {
	status, err := waitpidRetryEINTR(c.inf.Pid)
	if err != nil {
		return status, jdberr.NewSyscallError("waitpid", err)
	}

	switch {
	case status.Exited():
		c.state = Exited
		c.teardown()
	case status.Signaled():
		c.state = Terminated
		c.teardown()
	case status.Stopped():
		c.state = Stopped
		snap, err := registers.ReadAll(c.inf.Pid)
		if err != nil {
			return status, err
		}
		c.snap = snap
	}
	return status, nil
}

func waitpidRetryEINTR(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus
	op := func() error {
		_, err := unix.Wait4(pid, &status, 0, nil)
		if err == unix.EINTR {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(1*time.Millisecond), 20)
	if err := backoff.Retry(op, b); err != nil {
		return status, err
	}
	return status, nil
}

// Destroy tears down the tracee: stop, detach, resume, and (only if we
// launched it ourselves) kill and reap. A no-op unless Running or Stopped.
func (c *Controller) Destroy() error {
	if c.inf == nil {
		return nil
	}
	if c.state != Running && c.state != Stopped {
		c.teardown()
		return nil
	}

	if c.state == Running {
		if err := unix.Kill(c.inf.Pid, unix.SIGSTOP); err != nil {
			dbglog.Warnf("destroy: SIGSTOP: %v", err)
		}
		if _, err := waitpidRetryEINTR(c.inf.Pid); err != nil {
			dbglog.Warnf("destroy: wait after SIGSTOP: %v", err)
		}
	}

	if err := unix.PtraceDetach(c.inf.Pid); err != nil {
		dbglog.Warnf("destroy: PTRACE_DETACH: %v", err)
	}
	if err := unix.Kill(c.inf.Pid, unix.SIGCONT); err != nil {
		dbglog.Warnf("destroy: SIGCONT: %v", err)
	}

	if c.launch.TerminateOnExit() {
		if err := unix.Kill(c.inf.Pid, unix.SIGKILL); err != nil {
			dbglog.Warnf("destroy: SIGKILL: %v", err)
		}
		var status unix.WaitStatus
		unix.Wait4(c.inf.Pid, &status, 0, nil)
	}

	c.teardown()
	c.state = Unknown
	return nil
}

func (c *Controller) teardown() {
	if c.inf != nil && c.inf.PTY != nil {
		c.inf.PTY.Stop()
	}
	// The INT3 patches belonged to the tracee that is going away; the next
	// launch must patch every enabled site again.
	for _, site := range c.breakpoints {
		site.MarkUninstalled()
	}
	c.inf = nil
	c.snap = nil
}

// CreateBreakpoint allocates a new breakpoint at addr, enabled by default,
// and (if an inferior is live and stopped) patches it in immediately. Fails if a
// breakpoint already exists at addr.
func (c *Controller) CreateBreakpoint(addr breakpoint.VirtualAddress) (breakpoint.ID, error) {
	if _, exists := c.byAddress[addr]; exists {
		return 0, jdberr.NewDuplicateError(fmt.Sprintf("breakpoint already exists at %s", addr))
	}

	site := breakpoint.NewSite(addr)
	c.breakpoints[site.ID()] = site
	c.byAddress[addr] = site.ID()

	if c.inf != nil && c.state == Stopped {
		if err := c.inf.EnableBreakpointSite(site); err != nil {
			delete(c.breakpoints, site.ID())
			delete(c.byAddress, addr)
			return 0, err
		}
	}

	return site.ID(), nil
}

// DeleteBreakpoint removes a breakpoint, disabling it in the tracee first
// if one is live. Fails on an unknown id.
func (c *Controller) DeleteBreakpoint(id breakpoint.ID) error {
	site, ok := c.breakpoints[id]
	if !ok {
		return jdberr.NewNotFoundError(fmt.Sprintf("no breakpoint with id %d", id))
	}
	if c.inf != nil && site.IsInstalled() {
		if err := c.inf.DisableBreakpointSite(site); err != nil {
			return err
		}
	}
	delete(c.breakpoints, id)
	delete(c.byAddress, site.Address())
	return nil
}

// EnableBreakpoint marks a breakpoint enabled, patching it into the tracee
// if one is live and stopped. Idempotent.
func (c *Controller) EnableBreakpoint(id breakpoint.ID) error {
	site, ok := c.breakpoints[id]
	if !ok {
		return jdberr.NewNotFoundError(fmt.Sprintf("no breakpoint with id %d", id))
	}
	site.SetEnabled(true)
	if c.inf != nil && c.state == Stopped {
		return c.inf.EnableBreakpointSite(site)
	}
	return nil
}

// DisableBreakpoint marks a breakpoint disabled, restoring tracee memory if
// one is live and stopped. Idempotent.
func (c *Controller) DisableBreakpoint(id breakpoint.ID) error {
	site, ok := c.breakpoints[id]
	if !ok {
		return jdberr.NewNotFoundError(fmt.Sprintf("no breakpoint with id %d", id))
	}
	site.SetEnabled(false)
	if c.inf != nil && c.state == Stopped {
		return c.inf.DisableBreakpointSite(site)
	}
	return nil
}

// ReadRegister returns the register's value from the current snapshot,
// performing no I/O. ok is false when no snapshot exists (no stop observed
// yet, or one was invalidated by a resume).
func (c *Controller) ReadRegister(r registers.Register) (registers.Value, bool) {
	if c.snap == nil {
		return registers.Value{}, false
	}
	v, err := c.snap.Read(r)
	if err != nil {
		return registers.Value{}, false
	}
	return v, true
}

// StepOverBreakpoint single-steps the tracee past a breakpoint currently
// sitting at the program counter: it restores the original byte, issues a
// single-step, reinstates the INT3, and refreshes the snapshot. This is
// never invoked automatically by Resume; callers opt in explicitly.
func (c *Controller) StepOverBreakpoint() error {
	if c.state != Stopped || c.snap == nil {
		return jdberr.NewStateError("cannot step over breakpoint: inferior is not stopped")
	}
	pc := breakpoint.VirtualAddress(c.snap.PC())
	id, ok := c.byAddress[pc]
	if !ok {
		return jdberr.NewNotFoundError("no breakpoint at current program counter")
	}
	site := c.breakpoints[id]
	if !site.IsInstalled() {
		return nil
	}

	if err := c.inf.DisableBreakpointSite(site); err != nil {
		return err
	}
	if err := unix.PtraceSingleStep(c.inf.Pid); err != nil {
		return jdberr.NewSyscallError("PTRACE_SINGLESTEP", err)
	}
	if _, err := c.WaitOnSignal(); err != nil {
		return err
	}
	if c.state != Stopped {
		return nil
	}
	return c.inf.EnableBreakpointSite(site)
}

// LastNLogLines returns up to the last n entries of captured inferior
// output, the ring-buffer accessor a rendering layer polls to paint the
// output pane. Each entry is one chunk as the PTY reader delivered it;
// chunks are not split on newlines, so an entry may hold several lines or
// part of one.
func (c *Controller) LastNLogLines(n int) []string {
	if n <= 0 || len(c.output) == 0 {
		return nil
	}
	if n > len(c.output) {
		n = len(c.output)
	}
	return append([]string(nil), c.output[len(c.output)-n:]...)
}

// DrainOutput should be called periodically by the owner of the session
// loop (never concurrently with other Controller methods) to move
// whatever the PTY reader has produced into the output ring, dropping the
// oldest chunks once outputRingCapacity is exceeded.
func (c *Controller) DrainOutput() {
	if c.inf == nil || c.inf.PTY == nil {
		return
	}
	for {
		select {
		case chunk, ok := <-c.inf.PTY.Out():
			if !ok {
				return
			}
			c.output = append(c.output, chunk)
			if len(c.output) > outputRingCapacity {
				c.output = c.output[len(c.output)-outputRingCapacity:]
			}
		default:
			return
		}
	}
}

// Stdin returns the master PTY handle the caller can write to in order to
// send input to the inferior, or nil if no inferior with a PTY is live.
func (c *Controller) Stdin() *os.File {
	if c.inf == nil || c.inf.PTY == nil {
		return nil
	}
	return c.inf.PTY.Master()
}
