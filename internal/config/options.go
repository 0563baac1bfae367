// Package config holds the debugger's launch-time configuration: how to
// find the inferior (by path or by pid), the ASLR policy to apply to a
// launched child, and the resolved paths for the history and log files.
package config

import (
	"os"

	"github.com/jdb-go/jdb/internal/jdberr"
	"github.com/jdb-go/jdb/internal/xdg"
)

// LaunchKind distinguishes launching a fresh executable from attaching to an
// already-running pid.
type LaunchKind int

const (
	LaunchByPath LaunchKind = iota
	LaunchByPID
)

// LaunchType is a closed sum: either a path to exec, or a pid to attach to.
type LaunchType struct {
	Kind LaunchKind
	Path string // valid when Kind == LaunchByPath
	PID  int    // valid when Kind == LaunchByPID
}

// TerminateOnExit reports whether Destroy should SIGKILL the tracee: true
// only when we launched it ourselves, never for an attached pid we don't own.
func (l LaunchType) TerminateOnExit() bool {
	return l.Kind == LaunchByPath
}

// Options is the fully resolved configuration for one debugger session.
type Options struct {
	Launch      LaunchType
	DisableASLR bool
	HistoryFile string
	LogFile     string
	LogFormat   string // "text" or "json"
	Debug       bool
}

const appName = "jdb"

// Resolve fills in default history/log paths when the caller didn't
// override them via flags, applying the XDG base-directory resolution rules.
func Resolve(opts Options) (Options, error) {
	if opts.Launch.Kind == LaunchByPID && opts.Launch.PID <= 0 {
		return Options{}, jdberr.NewConfigError("pid must be > 0", nil)
	}
	if opts.Launch.Kind == LaunchByPath && opts.Launch.Path == "" {
		return Options{}, jdberr.NewConfigError("executable path is required", nil)
	}

	if opts.HistoryFile != "" {
		p, err := xdg.ResolvePath(opts.HistoryFile)
		if err != nil {
			return Options{}, err
		}
		opts.HistoryFile = p
	} else {
		p, err := xdg.CacheFile(appName, "history")
		if err != nil {
			return Options{}, err
		}
		opts.HistoryFile = p
	}

	if opts.LogFile != "" {
		p, err := xdg.ResolvePath(opts.LogFile)
		if err != nil {
			return Options{}, err
		}
		opts.LogFile = p
	} else if p, err := xdg.StateFile(appName, appName+".log"); err == nil {
		opts.LogFile = p
	}

	if opts.LogFormat == "" {
		opts.LogFormat = "text"
	}

	return opts, nil
}

// VerifyExecutable checks that a LaunchByPath target exists and is
// executable.
func VerifyExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return jdberr.NewConfigError("executable not found: "+path, err)
	}
	if info.IsDir() {
		return jdberr.NewConfigError(path+" is a directory, not an executable", nil)
	}
	if info.Mode()&0o111 == 0 {
		return jdberr.NewConfigError(path+" is not executable", nil)
	}
	return nil
}
