// Package runner executes the watched command and captures its output.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aemsenhuber/follow/internal/limits"
)

// SpawnError reports that a run could not be started at all (pipe or process
// creation failed). A command that starts and then fails is not a SpawnError;
// its output and exit status are the result.
type SpawnError struct {
	Op  string
	Err error
}

func (e *SpawnError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *SpawnError) Unwrap() error { return e.Err }

// Result is the outcome of one completed run. A non-zero ExitCode is not an
// error: whatever the command wrote is shown as-is. Err is set for read
// failures and capture overflow.
type Result struct {
	Output   []byte
	ExitCode int
	Err      error
}

// Instance is one in-flight execution. Exactly one result is delivered on
// Done once the output stream hits EOF and the exit status is collected.
type Instance struct {
	pid  int
	done chan Result
}

func (i *Instance) Done() <-chan Result { return i.done }
func (i *Instance) PID() int            { return i.pid }

// NewCompletedInstance returns an instance whose result is already available.
// Used when a run fails before a process exists, and by UI tests.
func NewCompletedInstance(res Result) *Instance {
	inst := &Instance{done: make(chan Result, 1)}
	inst.done <- res
	return inst
}

// Spawn starts one execution of cmd. The child's stdin comes from the null
// device; stdout and stderr share a single pipe so the capture interleaves
// them in write order. maxBytes bounds the capture (0 means the default
// budget). A command that cannot be executed at all is folded into an
// ordinary failed result instead of a SpawnError, so the caller never has to
// distinguish "bad command" from "slow command" up front.
func Spawn(cmd Command, maxBytes int64) (*Instance, error) {
	argv := cmd.execArgv()
	if len(argv) == 0 || argv[0] == "" {
		return nil, &SpawnError{Op: "spawn", Err: errors.New("empty command")}
	}

	devnull, err := os.Open(os.DevNull)
	if err != nil {
		return nil, &SpawnError{Op: "open null device", Err: err}
	}
	r, w, err := os.Pipe()
	if err != nil {
		_ = devnull.Close()
		return nil, &SpawnError{Op: "pipe", Err: err}
	}

	child := exec.Command(argv[0], argv[1:]...)
	child.Stdin = devnull
	child.Stdout = w
	child.Stderr = w

	startErr := child.Start()
	_ = devnull.Close()
	_ = w.Close()
	if startErr != nil {
		_ = r.Close()
		var execErr *exec.Error
		if errors.As(startErr, &execErr) {
			// Unresolvable command name: present it like a shell would, as
			// output plus a failure exit status.
			return NewCompletedInstance(Result{
				Output:   []byte(execErr.Error() + "\n"),
				ExitCode: 127,
			}), nil
		}
		return nil, &SpawnError{Op: "start", Err: startErr}
	}

	inst := &Instance{pid: child.Process.Pid, done: make(chan Result, 1)}
	go collect(child, r, NewAccumulator(limits.CaptureMaxBytes(maxBytes)), inst.done)
	return inst, nil
}

// collect pumps the pipe until EOF, then reaps the child. The read side is
// owned by this goroutine alone; the buffer is handed off exactly once, in
// the Result.
func collect(child *exec.Cmd, r *os.File, acc *Accumulator, done chan<- Result) {
	buf := make([]byte, 32*1024)
	var readErr error
	for {
		n, err := r.Read(buf)
		if n > 0 {
			acc.Consume(buf[:n])
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			break
		}
	}
	_ = r.Close()

	exit := 0
	if err := child.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exit = exitErr.ExitCode()
		} else if readErr == nil {
			readErr = err
		}
	}

	resErr := readErr
	if resErr == nil {
		resErr = acc.Err()
	}
	done <- Result{Output: acc.Bytes(), ExitCode: exit, Err: resErr}
}
