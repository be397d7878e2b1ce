//go:build !windows

// Package stderr captures writes to file descriptor 2 made by native
// libraries (D-Bus bindings, terminfo) that bypass os.Stderr. Stray
// lines on fd 2 corrupt the alternate screen, so they are collected
// here and surfaced through the UI instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives the captured lines. The reader side of the UI
// drains this channel; lines are dropped when it falls behind.
var Messages = make(chan string, 100)

var (
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	started   bool
)

// Start redirects fd 2 into a pipe feeding Messages. Call it before
// entering the alternate screen. The program runs fine without capture
// when setup fails.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
			}
		}
	}()

	return nil
}

// Stop restores the original fd 2 and closes Messages.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(origFd)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
