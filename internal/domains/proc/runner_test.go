package proc_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/domains/proc"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

func Test_Start_StreamsOutput(t *testing.T) {
	runner := proc.NewRunner()

	p, err := runner.Start("sh", "-c", "echo first; echo second")
	require.NoError(t, err)

	var lines []string
	for line := range p.Lines() {
		lines = append(lines, line)
	}

	require.Equal(t, []string{"first", "second"}, lines)

	<-p.Done()
	require.False(t, p.Alive())
	require.NoError(t, p.ExitErr())
}

func Test_Start_UnknownExecutable(t *testing.T) {
	runner := proc.NewRunner()

	_, err := runner.Start("definitely-not-a-real-binary-name")
	require.Error(t, err)
}

func Test_WaitReady(t *testing.T) {
	runner := proc.NewRunner()

	p, err := runner.Start("sh", "-c", "echo starting; echo AP-ENABLED; sleep 5")
	require.NoError(t, err)
	defer func() { _ = p.Stop() }()

	require.NoError(t, p.WaitReady(func(line string) bool {
		return strings.Contains(line, "AP-ENABLED")
	}, 5*time.Second))
	require.True(t, p.Alive())
}

func Test_WaitReady_ProcessExit(t *testing.T) {
	runner := proc.NewRunner()

	p, err := runner.Start("sh", "-c", "echo failed to start; exit 1")
	require.NoError(t, err)

	err = p.WaitReady(func(line string) bool {
		return strings.Contains(line, "never matches")
	}, 5*time.Second)
	require.ErrorIs(t, err, errs.ErrProcessExited)

	require.Error(t, p.ExitErr())
}

func Test_Stop(t *testing.T) {
	runner := proc.NewRunner()

	p, err := runner.Start("sleep", "30")
	require.NoError(t, err)
	require.True(t, p.Alive())

	require.NoError(t, p.Stop())
	require.False(t, p.Alive())

	// a second stop is a no-op
	require.NoError(t, p.Stop())
}
