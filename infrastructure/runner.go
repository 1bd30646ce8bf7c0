package infrastructure

import (
	"github.com/lanreach/wifi-extender-agent/internal/domains/accesspoint"
	"github.com/lanreach/wifi-extender-agent/internal/domains/proc"
	"github.com/lanreach/wifi-extender-agent/internal/domains/upstream"
)

// *proc.Process satisfies each domain's IProcess, but Go has no covariant
// returns, so *proc.Runner cannot satisfy the domain runner interfaces
// directly. These adapters convert at the injection boundary.

type upstreamRunner struct {
	runner *proc.Runner
}

func (r upstreamRunner) Start(name string, args ...string) (p upstream.IProcess, err error) {
	process, err := r.runner.Start(name, args...)
	if err != nil {
		return nil, err
	}

	return process, nil
}

type accessPointRunner struct {
	runner *proc.Runner
}

func (r accessPointRunner) Start(name string, args ...string) (p accesspoint.IProcess, err error) {
	process, err := r.runner.Start(name, args...)
	if err != nil {
		return nil, err
	}

	return process, nil
}
