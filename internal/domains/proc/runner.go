package proc

import (
	"bufio"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const stopGracePeriod = 3 * time.Second

// Process is one supervised external process. Its combined output is
// streamed line by line on Lines(); Done() closes when the process exits.
type Process struct {
	name string
	cmd  *exec.Cmd

	lines chan string
	done  chan struct{}

	mx      sync.Mutex
	exitErr error
}

type Runner struct{}

func NewRunner() *Runner {
	return new(Runner)
}

// Start launches the process and begins streaming its output.
func (r *Runner) Start(name string, args ...string) (p *Process, err error) {
	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("Start: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("Start: %s: %w", name, err)
	}

	p = &Process{
		name:  name,
		cmd:   cmd,
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			select {
			case p.lines <- line:
			default:
				// reader fell behind, drop the line
			}
		}

		waitErr := cmd.Wait()
		p.mx.Lock()
		p.exitErr = waitErr
		p.mx.Unlock()

		close(p.lines)
		close(p.done)

		log.Debug().
			Str("process", name).
			AnErr("exit", waitErr).
			Msg("Start: process exited")
	}()

	return p, nil
}

func (p *Process) Name() string {
	return p.name
}

func (p *Process) Lines() <-chan string {
	return p.lines
}

func (p *Process) Done() <-chan struct{} {
	return p.done
}

func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *Process) ExitErr() error {
	p.mx.Lock()
	defer p.mx.Unlock()

	return p.exitErr
}

// WaitReady consumes output lines until one matches the ready predicate.
// A process exit or an elapsed timeout both count as failure, not as
// pending.
func (p *Process) WaitReady(ready func(line string) bool, timeout time.Duration) (err error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case line, ok := <-p.lines:
			if !ok {
				return fmt.Errorf("WaitReady: %s: %w", p.name, errs.ErrProcessExited)
			}

			if ready(line) {
				return nil
			}

		case <-p.done:
			return fmt.Errorf("WaitReady: %s: %w", p.name, errs.ErrProcessExited)

		case <-timer.C:
			return fmt.Errorf("WaitReady: %s: %w", p.name, errs.ErrProcessNotReady)
		}
	}
}

// Stop terminates the process, escalating from SIGTERM to SIGKILL after a
// grace period. Stopping an already exited process is a no-op.
func (p *Process) Stop() (err error) {
	if !p.Alive() {
		return nil
	}

	if err = p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("Stop: %s: %w", p.name, err)
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(stopGracePeriod):
	}

	if err = p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("Stop: %s: %w", p.name, err)
	}

	<-p.done
	return nil
}
