// Package jdberr defines the error taxonomy shared by every jdb package.
//
// ConfigError, ParseError and SyscallError wrap an optional underlying cause
// (often a syscall.Errno) and implement Unwrap; the other kinds carry only a
// message. Callers use errors.As/errors.Is instead of string matching, while the dispatcher
// still has a single place to decide how to render a failure to the user.
package jdberr

import (
	"errors"
	"fmt"
)

// ConfigError covers missing/invalid executables, PID <= 0, and unresolved
// home/cache directories.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Msg)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError builds a ConfigError with an optional wrapped cause.
func NewConfigError(msg string, cause error) error {
	return &ConfigError{Msg: msg, Err: cause}
}

// ParseError covers malformed command lines: wrong arity, unparseable
// addresses/ids, unknown verbs.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("parse: %s", e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func NewParseError(msg string, cause error) error {
	return &ParseError{Msg: msg, Err: cause}
}

// StateError covers a command issued against an incompatible ProcessState.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return fmt.Sprintf("state: %s", e.Msg) }

func NewStateError(msg string) error {
	return &StateError{Msg: msg}
}

// SyscallError wraps a failing ptrace/fork/exec/waitpid/ioctl/PTY call,
// carrying the underlying errno.
type SyscallError struct {
	Op  string
	Err error
}

func (e *SyscallError) Error() string { return fmt.Sprintf("syscall %s: %v", e.Op, e.Err) }

func (e *SyscallError) Unwrap() error { return e.Err }

func NewSyscallError(op string, cause error) error {
	return &SyscallError{Op: op, Err: cause}
}

// NotFoundError covers delete/enable/disable of an unknown breakpoint id.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("not found: %s", e.Msg) }

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

// DuplicateError covers create-breakpoint at an address already occupied.
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("duplicate: %s", e.Msg) }

func NewDuplicateError(msg string) error {
	return &DuplicateError{Msg: msg}
}

// BadConversionError covers writing a register value whose variant is
// incompatible with the register's format, or converting a float to an
// integer address.
type BadConversionError struct {
	Msg string
}

func (e *BadConversionError) Error() string { return fmt.Sprintf("bad conversion: %s", e.Msg) }

func NewBadConversionError(msg string) error {
	return &BadConversionError{Msg: msg}
}

// Is* helpers let callers branch on kind without importing the concrete type.

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

func IsDuplicate(err error) bool {
	var t *DuplicateError
	return errors.As(err, &t)
}

func IsState(err error) bool {
	var t *StateError
	return errors.As(err, &t)
}
