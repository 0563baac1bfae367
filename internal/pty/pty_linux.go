//go:build linux

// Package pty owns the master side of a pseudo-terminal: it opens the pair,
// hands the slave to the launched tracee, and forwards whatever the tracee
// writes to its stdio over a channel the caller can drain.
package pty

import (
	"os"
	"strings"

	"github.com/kr/pty"
	"golang.org/x/sys/unix"

	"github.com/jdb-go/jdb/internal/dbglog"
	"github.com/jdb-go/jdb/internal/jdberr"
)

const (
	readChunk   = 4096
	pollTimeout = 42 // milliseconds
	outBuffer   = 256
)

// Channel owns the master half of a PTY pair and runs a background reader
// that decodes whatever the tracee writes and publishes it on Out().
type Channel struct {
	master *os.File
	slave  *os.File
	out    chan string
	stop   chan struct{}
	done   chan struct{}
}

// Open allocates a PTY pair with a fixed 24-row by 80-column window, the
// same fixed size every launch uses; terminal resize is not propagated to
// the tracee.
func Open() (*Channel, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, jdberr.NewSyscallError("openpty", err)
	}
	winsz := &unix.Winsize{Row: 24, Col: 80}
	if err := unix.IoctlSetWinsize(int(slave.Fd()), unix.TIOCSWINSZ, winsz); err != nil {
		master.Close()
		slave.Close()
		return nil, jdberr.NewSyscallError("ioctl(TIOCSWINSZ)", err)
	}

	c := &Channel{
		master: master,
		slave:  slave,
		out:    make(chan string, outBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go c.run()
	return c, nil
}

// Master returns the master file, for a writer the controller keeps for
// itself (sending input to the tracee's stdin).
func (c *Channel) Master() *os.File { return c.master }

// Slave returns the slave file, handed to the child process as its
// stdin/stdout/stderr before exec.
func (c *Channel) Slave() *os.File { return c.slave }

// Out returns the channel that receives lossy-UTF8-decoded chunks of
// whatever the tracee wrote to its stdio.
func (c *Channel) Out() <-chan string { return c.out }

// Stop signals the reader goroutine to exit and blocks until it has. Safe
// to call more than once.
func (c *Channel) Stop() {
	select {
	case <-c.stop:
	default:
		close(c.stop)
	}
	<-c.done
	c.slave.Close()
	c.master.Close()
}

func (c *Channel) run() {
	defer close(c.done)

	fd := int(c.master.Fd())
	buf := make([]byte, readChunk)

	for {
		select {
		case <-c.stop:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollTimeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			dbglog.Errorf("pty: poll: %v", err)
			return
		}
		if n == 0 {
			continue
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 && fds[0].Revents&unix.POLLIN == 0 {
			return
		}

		read, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
				continue
			}
			dbglog.Errorf("pty: read: %v", err)
			return
		}
		if read == 0 {
			return
		}

		chunk := strings.ToValidUTF8(string(buf[:read]), "�")
		select {
		case c.out <- chunk:
		default:
			dbglog.Warnf("pty: output channel full, dropping %d bytes", read)
		}
	}
}
