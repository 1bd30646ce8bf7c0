package accesspoint

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const (
	hostapdReadyMarker = "AP-ENABLED"
	dnsmasqReadyMarker = "DHCP, IP range"

	staConnectedMarker    = "AP-STA-CONNECTED"
	staDisconnectedMarker = "AP-STA-DISCONNECTED"

	signalSampleInterval = 20 * time.Second
)

type (
	IShellService interface {
		Exec(command commands.ICommand) (err error)
		ExecOutputContext(ctx context.Context, command commands.ICommand) (output []byte, err error)
	}

	IProcess interface {
		Lines() <-chan string
		Done() <-chan struct{}
		WaitReady(ready func(line string) bool, timeout time.Duration) (err error)
		Stop() (err error)
		Alive() bool
		ExitErr() error
	}

	IProcessRunner interface {
		Start(name string, args ...string) (p IProcess, err error)
	}

	IStatusService interface {
		Publish(event entities.StatusEvent)
	}
)

// Service drives the access point half of the radio. The broadcast
// process (hostapd) and the DHCP process (dnsmasq) are one logical unit:
// Running means both confirmed ready, and any failure tears both down.
type Service struct {
	shellService  IShellService
	runner        IProcessRunner
	statusService IStatusService

	interfaceName string
	hostapdConf   string
	dnsmasqConf   string

	mx         sync.Mutex
	state      entities.APState
	hostapd    IProcess
	dnsmasq    IProcess
	generation uint64

	clients *ClientTracker

	watchCancel context.CancelFunc
}

func NewService(shellService IShellService, runner IProcessRunner, statusService IStatusService,
	interfaceName string) *Service {
	s := &Service{
		shellService:  shellService,
		runner:        runner,
		statusService: statusService,

		interfaceName: interfaceName,
		hostapdConf:   constants.HostapdConfPath,
		dnsmasqConf:   constants.DnsmasqConfPath,

		state: entities.APState{ID: entities.APStopped},
	}
	s.clients = NewClientTracker(s.publishClientEvent)

	return s
}

// SetConfPaths overrides where the hostapd and dnsmasq configuration
// files are written. Must be called before Start.
func (s *Service) SetConfPaths(hostapdConf, dnsmasqConf string) {
	s.hostapdConf = hostapdConf
	s.dnsmasqConf = dnsmasqConf
}

func (s *Service) CurrentState() entities.APState {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.state
}

func (s *Service) Clients() []entities.ClientRecord {
	return s.clients.Snapshot()
}

// Start brings the pair up atomically: configs for both are written
// first, hostapd must report enabled before dnsmasq is launched, and a
// failure at any step tears down whatever already started.
func (s *Service) Start(ctx context.Context, profile entities.APProfile) (err error) {
	s.mx.Lock()
	if s.state.ID == entities.APRunning || s.state.ID == entities.APStarting {
		s.mx.Unlock()
		return nil
	}
	s.generation++
	generation := s.generation
	s.setStateLocked(entities.APState{ID: entities.APStarting})
	s.mx.Unlock()

	hostapd, dnsmasq, err := s.launchPair(ctx, profile)
	if err != nil {
		s.teardownPair(hostapd, dnsmasq)

		s.mx.Lock()
		if s.generation == generation {
			s.setStateLocked(entities.APState{ID: entities.APStopped})
		}
		s.mx.Unlock()

		return fmt.Errorf("Start: %w: %w", errs.ErrAPStartFailed, err)
	}

	watchCtx, cancel := context.WithCancel(context.Background())

	s.mx.Lock()
	if s.generation != generation {
		s.mx.Unlock()
		cancel()
		s.teardownPair(hostapd, dnsmasq)
		return fmt.Errorf("Start: %w", context.Canceled)
	}

	s.hostapd = hostapd
	s.dnsmasq = dnsmasq
	s.watchCancel = cancel
	s.setStateLocked(entities.APState{ID: entities.APRunning})
	s.mx.Unlock()

	go s.watchProcesses(watchCtx, hostapd, dnsmasq, generation)
	go s.sampleSignals(watchCtx)

	return nil
}

// Stop tears both processes down and resets client state. Stopping an
// already stopped coordinator is a no-op.
func (s *Service) Stop() (err error) {
	s.mx.Lock()
	s.generation++
	hostapd, dnsmasq := s.hostapd, s.dnsmasq
	s.hostapd, s.dnsmasq = nil, nil
	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
	s.setStateLocked(entities.APState{ID: entities.APStopped})
	s.mx.Unlock()

	s.teardownPair(hostapd, dnsmasq)
	s.clients.Reset()

	if flushErr := s.shellService.Exec(commands.NewAddrFlushCmd(s.interfaceName)); flushErr != nil {
		log.Warn().Err(flushErr).Msg("Stop: address flush error")
	}

	for _, path := range []string{s.hostapdConf, s.dnsmasqConf} {
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Warn().Err(removeErr).Str("path", path).Msg("Stop: config cleanup error")
		}
	}

	return nil
}

func (s *Service) launchPair(ctx context.Context, profile entities.APProfile) (hostapd, dnsmasq IProcess, err error) {
	if err = writeHostapdConfig(s.hostapdConf, s.interfaceName, profile); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	if err = writeDnsmasqConfig(s.dnsmasqConf, s.interfaceName, profile); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	// the AP interface owns the gateway address of the client subnet
	if err = s.shellService.Exec(commands.NewAddrFlushCmd(s.interfaceName)); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	if err = s.shellService.Exec(commands.NewAddrAddCmd(s.interfaceName, profile.GatewayCIDR)); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	if err = s.shellService.Exec(commands.NewLinkSetUpCmd(s.interfaceName)); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	if hostapd, err = s.runner.Start("hostapd", s.hostapdConf); err != nil {
		return nil, nil, fmt.Errorf("launchPair: %w", err)
	}

	if err = hostapd.WaitReady(func(line string) bool {
		return strings.Contains(line, hostapdReadyMarker)
	}, constants.HostapdReadyTimeout); err != nil {
		return hostapd, nil, fmt.Errorf("launchPair: hostapd: %w", err)
	}

	if dnsmasq, err = s.runner.Start("dnsmasq", "--no-daemon", "--conf-file="+s.dnsmasqConf); err != nil {
		return hostapd, nil, fmt.Errorf("launchPair: %w", err)
	}

	if err = dnsmasq.WaitReady(func(line string) bool {
		return strings.Contains(line, dnsmasqReadyMarker)
	}, constants.DnsmasqReadyTimeout); err != nil {
		return hostapd, dnsmasq, fmt.Errorf("launchPair: dnsmasq: %w", err)
	}

	return hostapd, dnsmasq, nil
}

func (s *Service) teardownPair(hostapd, dnsmasq IProcess) {
	if dnsmasq != nil && dnsmasq.Alive() {
		if err := dnsmasq.Stop(); err != nil {
			log.Error().Err(err).Msg("teardownPair: stop dnsmasq error")
		}
	}

	if hostapd != nil && hostapd.Alive() {
		if err := hostapd.Stop(); err != nil {
			log.Error().Err(err).Msg("teardownPair: stop hostapd error")
		}
	}
}

// watchProcesses merges both processes' event streams into client state
// and detects a crash of either leg.
func (s *Service) watchProcesses(ctx context.Context, hostapd, dnsmasq IProcess, generation uint64) {
	for {
		select {
		case <-ctx.Done():
			return

		case line, ok := <-hostapd.Lines():
			if !ok {
				s.onProcessFailure(generation, "hostapd", hostapd.ExitErr())
				return
			}
			s.handleHostapdLine(line)

		case line, ok := <-dnsmasq.Lines():
			if !ok {
				s.onProcessFailure(generation, "dnsmasq", dnsmasq.ExitErr())
				return
			}
			s.handleDnsmasqLine(line)

		case <-hostapd.Done():
			s.onProcessFailure(generation, "hostapd", hostapd.ExitErr())
			return

		case <-dnsmasq.Done():
			s.onProcessFailure(generation, "dnsmasq", dnsmasq.ExitErr())
			return
		}
	}
}

func (s *Service) onProcessFailure(generation uint64, process string, exitErr error) {
	s.mx.Lock()
	if s.generation != generation {
		// deliberate stop already superseded this pair
		s.mx.Unlock()
		return
	}

	reason := fmt.Sprintf("%s exited unexpectedly", process)
	if exitErr != nil {
		reason = fmt.Sprintf("%s: %s", reason, exitErr)
	}

	log.Error().Str("process", process).Msg("onProcessFailure: AP process pair lost")

	hostapd, dnsmasq := s.hostapd, s.dnsmasq
	s.hostapd, s.dnsmasq = nil, nil
	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
	s.setStateLocked(entities.APState{ID: entities.APFailed, Reason: reason})
	s.mx.Unlock()

	// never leave the surviving half running alone
	s.teardownPair(hostapd, dnsmasq)
	s.clients.Reset()
}

func (s *Service) handleHostapdLine(line string) {
	switch {
	case strings.Contains(line, staConnectedMarker):
		if mac, ok := lastMAC(line); ok {
			s.clients.OnAssociate(mac)
		}

	case strings.Contains(line, staDisconnectedMarker):
		if mac, ok := lastMAC(line); ok {
			s.clients.OnDisassociate(mac)
		}
	}
}

func (s *Service) handleDnsmasqLine(line string) {
	lease, ok := parseDHCPAck(line)
	if !ok {
		return
	}

	s.clients.OnLease(lease.MAC, lease.IP, lease.Hostname)
}

// sampleSignals periodically merges per-station signal readings into the
// client set.
func (s *Service) sampleSignals(ctx context.Context) {
	ticker := time.NewTicker(signalSampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			output, err := s.shellService.ExecOutputContext(ctx, commands.NewStationDumpCmd(s.interfaceName))
			if err != nil {
				log.Debug().Err(err).Msg("sampleSignals: station dump failed")
				continue
			}

			for mac, signal := range parseStationSignals(output) {
				s.clients.UpdateSignal(mac, signal)
			}

			for _, record := range s.clients.Leaseless(constants.LeaseWaitTimeout) {
				log.Debug().
					Str("mac", record.MAC).
					Msg("sampleSignals: client associated without a lease")
			}
		}
	}
}

func (s *Service) publishClientEvent(eventType entities.EventType, record entities.ClientRecord) {
	event := entities.NewStatusEvent(eventType)
	recordCopy := record
	event.Client = &recordCopy
	s.statusService.Publish(event)
}

// setStateLocked mutates APState and publishes the change. The caller
// must hold s.mx.
func (s *Service) setStateLocked(state entities.APState) {
	if s.state == state {
		return
	}

	s.state = state

	event := entities.NewStatusEvent(entities.EventAPChanged)
	stateCopy := state
	event.AP = &stateCopy
	if state.ID == entities.APFailed {
		event.Reason = entities.ReasonAPStartFailed
		event.Message = state.Reason
	}

	go s.statusService.Publish(event)
}
