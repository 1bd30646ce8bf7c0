package bridge

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

type (
	IShellService interface {
		Exec(command commands.ICommand) (err error)
		ExecOutput(command commands.ICommand) (output []byte, err error)
	}

	IStatusService interface {
		Publish(event entities.StatusEvent)
	}
)

// undoStep reverses one applied resource during deactivation or partial
// failure rollback.
type undoStep struct {
	name string
	fn   func() error
}

// Service owns the forwarding plane between the upstream link and the AP
// client subnet. Every applied resource is tracked so deactivation
// reverses exactly what was created, even after a partial failure.
type Service struct {
	shellService  IShellService
	statusService IStatusService
	ipForwardPath string
	bridgeName    string

	mx                sync.Mutex
	state             entities.BridgeStateID
	upstreamInterface string
	apInterface       string
	undoStack         []undoStep
}

func NewService(shellService IShellService, statusService IStatusService) *Service {
	return &Service{
		shellService:  shellService,
		statusService: statusService,
		ipForwardPath: constants.IPForwardPath,
		bridgeName:    constants.BridgeName,

		state: entities.BridgeTornDown,
	}
}

func (s *Service) CurrentState() entities.BridgeStateID {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.state
}

// Activate builds the bridge, enables forwarding and installs NAT rules.
// Calling it again with the same interface pair is a no-op success;
// partial failure reverses whatever was applied and reports failure.
func (s *Service) Activate(upstreamInterface, apInterface string) (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.state == entities.BridgeActive {
		if s.upstreamInterface == upstreamInterface && s.apInterface == apInterface {
			return nil
		}

		return fmt.Errorf("Activate: bridge active for %s/%s: %w",
			s.upstreamInterface, s.apInterface, errs.ErrBridgeActivationFailed)
	}

	s.setStateLocked(entities.BridgeBuilding)

	if err = s.applyAll(upstreamInterface, apInterface); err != nil {
		// never leave a partially-active bridge behind
		s.unwindLocked()
		s.setStateLocked(entities.BridgeTornDown)

		return fmt.Errorf("Activate: %w: %w", errs.ErrBridgeActivationFailed, err)
	}

	s.upstreamInterface = upstreamInterface
	s.apInterface = apInterface
	s.setStateLocked(entities.BridgeActive)

	return nil
}

// Deactivate reverses everything Activate applied. Deactivating an
// already torn down bridge is a no-op success.
func (s *Service) Deactivate() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.state == entities.BridgeTornDown {
		return nil
	}

	s.setStateLocked(entities.BridgeTearingDown)
	s.unwindLocked()
	s.upstreamInterface = ""
	s.apInterface = ""
	s.setStateLocked(entities.BridgeTornDown)

	return nil
}

// Status introspects the live forwarding plane for the daemon status
// snapshot.
func (s *Service) Status() entities.BridgeStatus {
	s.mx.Lock()
	status := entities.BridgeStatus{
		State:             s.state,
		BridgeName:        s.bridgeName,
		UpstreamInterface: s.upstreamInterface,
		APInterface:       s.apInterface,
	}
	upstreamInterface := s.upstreamInterface
	s.mx.Unlock()

	if data, err := os.ReadFile(s.ipForwardPath); err == nil {
		status.ForwardingEnabled = strings.TrimSpace(string(data)) == "1"
	}

	if upstreamInterface != "" {
		if output, err := s.shellService.ExecOutput(
			commands.NewIptablesCmd("-t", "nat", "-L", "POSTROUTING", "-n", "-v")); err == nil {
			status.NATEnabled = strings.Contains(string(output), upstreamInterface)
		}
	}

	return status
}

func (s *Service) applyAll(upstreamInterface, apInterface string) (err error) {
	if err = s.apply("bridge device",
		commands.NewBridgeAddCmd(s.bridgeName),
		commands.NewBridgeDelCmd(s.bridgeName),
	); err != nil {
		return err
	}

	if err = s.apply("enslave ap interface",
		commands.NewSetMasterCmd(apInterface, s.bridgeName),
		commands.NewSetNoMasterCmd(apInterface),
	); err != nil {
		return err
	}

	if err = s.apply("bridge link up",
		commands.NewLinkSetUpCmd(s.bridgeName),
		commands.NewLinkSetDownCmd(s.bridgeName),
	); err != nil {
		return err
	}

	if err = s.applyForwardingFlag(); err != nil {
		return err
	}

	natRules := [][]string{
		{"-t", "nat", "-A", "POSTROUTING", "-o", upstreamInterface, "-j", "MASQUERADE"},
		{"-A", "FORWARD", "-i", apInterface, "-o", upstreamInterface, "-j", "ACCEPT"},
		{"-A", "FORWARD", "-i", upstreamInterface, "-o", apInterface,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT"},
	}
	for _, rule := range natRules {
		deleteRule := make([]string, len(rule))
		copy(deleteRule, rule)
		for i, arg := range deleteRule {
			if arg == "-A" {
				deleteRule[i] = "-D"
				break
			}
		}

		if err = s.apply("iptables rule",
			commands.NewIptablesCmd(rule...),
			commands.NewIptablesCmd(deleteRule...),
		); err != nil {
			return err
		}
	}

	return nil
}

// apply executes one forward command and records its reversal on the
// undo stack.
func (s *Service) apply(name string, forward, reverse commands.ICommand) (err error) {
	if err = s.shellService.Exec(forward); err != nil {
		return fmt.Errorf("apply: %s: %w", name, err)
	}

	s.undoStack = append(s.undoStack, undoStep{
		name: name,
		fn: func() error {
			return s.shellService.Exec(reverse)
		},
	})

	return nil
}

func (s *Service) applyForwardingFlag() (err error) {
	return s.apply("ip forwarding",
		commands.NewSysctlSetCmd("net.ipv4.ip_forward", "1"),
		commands.NewSysctlSetCmd("net.ipv4.ip_forward", "0"),
	)
}

// unwindLocked replays the undo stack in reverse, tolerating resources
// that are already gone. The caller must hold s.mx.
func (s *Service) unwindLocked() {
	for i := len(s.undoStack) - 1; i >= 0; i-- {
		step := s.undoStack[i]
		if err := step.fn(); err != nil {
			log.Warn().
				Err(err).
				Str("step", step.name).
				Msg("unwindLocked: reversal step failed")
		}
	}

	s.undoStack = nil
}

// setStateLocked mutates BridgeState and publishes the change. The
// caller must hold s.mx.
func (s *Service) setStateLocked(state entities.BridgeStateID) {
	if s.state == state {
		return
	}

	s.state = state

	event := entities.NewStatusEvent(entities.EventBridgeChanged)
	stateCopy := state
	event.Bridge = &stateCopy

	go s.statusService.Publish(event)
}
