package upstream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const wpaSupplicantReadyMarker = "CTRL-EVENT-CONNECTED"

type (
	IShellService interface {
		Exec(command commands.ICommand) (err error)
		ExecContext(ctx context.Context, command commands.ICommand) (err error)
		ExecOutputContext(ctx context.Context, command commands.ICommand) (output []byte, err error)
	}

	IProcess interface {
		Lines() <-chan string
		Done() <-chan struct{}
		WaitReady(ready func(line string) bool, timeout time.Duration) (err error)
		Stop() (err error)
		Alive() bool
	}

	IProcessRunner interface {
		Start(name string, args ...string) (p IProcess, err error)
	}

	IStatusService interface {
		Publish(event entities.StatusEvent)
	}
)

type ReconnectPolicy struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxAttempts int
}

func DefaultReconnectPolicy() ReconnectPolicy {
	return ReconnectPolicy{
		BaseDelay:   constants.ReconnectBaseDelay,
		MaxDelay:    constants.ReconnectMaxDelay,
		MaxAttempts: constants.ReconnectMaxAttempts,
	}
}

// Backoff returns the delay before the given reconnection attempt.
// Attempts are counted from 1; the delay doubles each attempt up to
// MaxDelay.
func (p ReconnectPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}

	if delay > p.MaxDelay {
		return p.MaxDelay
	}

	return delay
}

// Service drives the station-mode half of the radio: scanning,
// association, DHCP, link supervision and the reconnection policy.
// ConnectionState is owned exclusively by this service.
type Service struct {
	shellService  IShellService
	runner        IProcessRunner
	statusService IStatusService
	policy        ReconnectPolicy

	interfaceName string
	confPath      string

	mx            sync.Mutex
	state         entities.ConnectionState
	profile       *entities.UpstreamProfile
	wpaProcess    IProcess
	autoReconnect bool
	unrecoverable bool
	scanActive    bool

	reconnectCancel context.CancelFunc
	generation      uint64
}

func NewService(shellService IShellService, runner IProcessRunner, statusService IStatusService,
	interfaceName string, policy ReconnectPolicy) *Service {
	return &Service{
		shellService:  shellService,
		runner:        runner,
		statusService: statusService,
		policy:        policy,

		interfaceName: interfaceName,
		confPath:      constants.WPASupplicantConfPath,

		state: entities.ConnectionState{ID: entities.ConnectionDisconnected},
	}
}

func (s *Service) CurrentState() entities.ConnectionState {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.state
}

// EnableReconnect toggles the automatic reconnection policy. The
// orchestrator enables it while the goal is Extending.
func (s *Service) EnableReconnect(enabled bool) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.autoReconnect = enabled
	if !enabled && s.reconnectCancel != nil {
		s.reconnectCancel()
		s.reconnectCancel = nil
	}
}

// Scan performs one finite pass over the air and returns discovered
// networks. A scan in progress cannot be restarted.
func (s *Service) Scan(ctx context.Context) (results []entities.ScanResult, err error) {
	s.mx.Lock()
	if s.scanActive {
		s.mx.Unlock()
		return results, fmt.Errorf("Scan: %w", errs.ErrScanInProgress)
	}
	s.scanActive = true

	if s.state.ID == entities.ConnectionDisconnected {
		s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionScanning})
	}
	s.mx.Unlock()

	defer func() {
		s.mx.Lock()
		s.scanActive = false
		if s.state.ID == entities.ConnectionScanning {
			s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionDisconnected})
		}
		s.mx.Unlock()
	}()

	scanCtx, cancel := context.WithTimeout(ctx, constants.ScanTimeout)
	defer cancel()

	output, err := s.shellService.ExecOutputContext(scanCtx, commands.NewScanCmd(s.interfaceName))
	if err != nil {
		return results, fmt.Errorf("Scan: %w", err)
	}

	return parseScanOutput(output), nil
}

// Connect associates with the profile's network, obtains a DHCP lease and
// verifies the link. A successful connect clears the unrecoverable flag
// and resets the reconnection counter.
func (s *Service) Connect(ctx context.Context, profile entities.UpstreamProfile) (err error) {
	s.mx.Lock()
	s.profile = &profile
	s.unrecoverable = false
	generation := s.nextGenerationLocked()
	s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionAssociating, SSID: profile.SSID})
	s.mx.Unlock()

	if err = s.establish(ctx, profile, generation); err != nil {
		s.mx.Lock()
		if s.generation == generation {
			s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionDisconnected})
		}
		s.mx.Unlock()

		return fmt.Errorf("Connect: %w", err)
	}

	return nil
}

// Disconnect tears the station link down deliberately; no reconnection
// follows.
func (s *Service) Disconnect() (err error) {
	s.mx.Lock()
	s.nextGenerationLocked()
	if s.reconnectCancel != nil {
		s.reconnectCancel()
		s.reconnectCancel = nil
	}
	process := s.wpaProcess
	s.wpaProcess = nil
	s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionDisconnected})
	s.mx.Unlock()

	if process != nil && process.Alive() {
		if err = process.Stop(); err != nil {
			log.Error().Err(err).Msg("Disconnect: stop wpa_supplicant error")
		}
	}

	releaseCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = s.shellService.ExecContext(releaseCtx, commands.NewCmd("dhclient", "-r", s.interfaceName)); err != nil {
		log.Warn().Err(err).Msg("Disconnect: dhcp release error")
	}

	return nil
}

// ManualRetry clears the unrecoverable condition and retries the stored
// profile once.
func (s *Service) ManualRetry(ctx context.Context) (err error) {
	s.mx.Lock()
	profile := s.profile
	s.unrecoverable = false
	s.mx.Unlock()

	if profile == nil {
		return fmt.Errorf("ManualRetry: %w", errs.ErrProfileNotFound)
	}

	if err = s.Connect(ctx, *profile); err != nil {
		return fmt.Errorf("ManualRetry: %w", err)
	}

	return nil
}

func (s *Service) IsUnrecoverable() bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.unrecoverable
}

func (s *Service) establish(ctx context.Context, profile entities.UpstreamProfile, generation uint64) (err error) {
	if err = writeSupplicantConfig(s.confPath, profile); err != nil {
		return fmt.Errorf("establish: %w", err)
	}

	// there may be a supplicant left over from a previous run
	if killErr := s.shellService.Exec(commands.NewKillallCmd("wpa_supplicant")); killErr != nil {
		log.Debug().Err(killErr).Msg("establish: no previous wpa_supplicant")
	}

	process, err := s.runner.Start("wpa_supplicant", "-i", s.interfaceName, "-c", s.confPath)
	if err != nil {
		return fmt.Errorf("establish: %w", err)
	}

	if err = process.WaitReady(func(line string) bool {
		return strings.Contains(line, wpaSupplicantReadyMarker)
	}, constants.ModeVerifyTimeout); err != nil {
		if stopErr := process.Stop(); stopErr != nil {
			log.Error().Err(stopErr).Msg("establish: stop wpa_supplicant error")
		}

		return fmt.Errorf("establish: %w: %w", errs.ErrAssociationFailed, err)
	}

	dhcpCtx, cancel := context.WithTimeout(ctx, constants.DHCPClientTimeout)
	defer cancel()

	if err = s.shellService.ExecContext(dhcpCtx, commands.NewCmd("dhclient", s.interfaceName)); err != nil {
		if stopErr := process.Stop(); stopErr != nil {
			log.Error().Err(stopErr).Msg("establish: stop wpa_supplicant error")
		}

		return fmt.Errorf("establish: %w", err)
	}

	s.mx.Lock()
	if s.generation != generation {
		// goal changed while we were connecting; discard the result
		s.mx.Unlock()
		if stopErr := process.Stop(); stopErr != nil {
			log.Error().Err(stopErr).Msg("establish: stop stale wpa_supplicant error")
		}

		return fmt.Errorf("establish: %w", context.Canceled)
	}

	s.wpaProcess = process
	s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionConnected, SSID: profile.SSID})
	s.mx.Unlock()

	go s.superviseLink(process, profile, generation)

	return nil
}

// superviseLink watches the supplicant event stream for unsolicited
// disconnects and triggers the reconnection policy.
func (s *Service) superviseLink(process IProcess, profile entities.UpstreamProfile, generation uint64) {
	for {
		select {
		case line, ok := <-process.Lines():
			if !ok {
				s.onLinkLost(profile, generation, "wpa_supplicant exited")
				return
			}

			if strings.Contains(line, "CTRL-EVENT-DISCONNECTED") {
				s.onLinkLost(profile, generation, "disassociated from upstream")
				return
			}

		case <-process.Done():
			s.onLinkLost(profile, generation, "wpa_supplicant exited")
			return
		}
	}
}

func (s *Service) onLinkLost(profile entities.UpstreamProfile, generation uint64, cause string) {
	s.mx.Lock()
	if s.generation != generation {
		// deliberate disconnect or a newer connect superseded this link
		s.mx.Unlock()
		return
	}

	log.Warn().
		Str("ssid", profile.SSID).
		Str("cause", cause).
		Msg("onLinkLost: upstream connection lost")

	if !s.autoReconnect {
		s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionDisconnected})
		s.mx.Unlock()
		return
	}

	reconnectCtx, cancel := context.WithCancel(context.Background())
	s.reconnectCancel = cancel
	s.mx.Unlock()

	go s.runReconnect(reconnectCtx, profile, generation)
}

// runReconnect applies the bounded exponential backoff policy until the
// link is restored or the attempt budget is exhausted.
func (s *Service) runReconnect(ctx context.Context, profile entities.UpstreamProfile, generation uint64) {
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		backoff := s.policy.Backoff(attempt)

		s.mx.Lock()
		if s.generation != generation {
			s.mx.Unlock()
			return
		}
		s.setStateLocked(entities.ConnectionState{
			ID:      entities.ConnectionReconnecting,
			SSID:    profile.SSID,
			Attempt: attempt,
			Backoff: backoff,
		})
		s.mx.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		if err := s.establish(ctx, profile, generation); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("runReconnect: reconnect attempt failed")
			continue
		}

		log.Info().
			Int("attempt", attempt).
			Str("ssid", profile.SSID).
			Msg("runReconnect: upstream connection restored")

		return
	}

	// terminal for this component until a new profile or manual retry
	s.mx.Lock()
	if s.generation == generation {
		s.unrecoverable = true
		s.setStateLocked(entities.ConnectionState{ID: entities.ConnectionDisconnected})
	}
	s.mx.Unlock()

	event := entities.NewStatusEvent(entities.EventConnectionChanged)
	event.Reason = entities.ReasonUpstreamUnrecoverable
	event.Message = fmt.Sprintf("reconnection to %s abandoned after %d attempts", profile.SSID, s.policy.MaxAttempts)
	state := s.CurrentState()
	event.Connection = &state
	s.statusService.Publish(event)
}

// setStateLocked mutates ConnectionState and publishes the change. The
// caller must hold s.mx.
func (s *Service) setStateLocked(state entities.ConnectionState) {
	if s.state == state {
		return
	}

	s.state = state

	event := entities.NewStatusEvent(entities.EventConnectionChanged)
	stateCopy := state
	event.Connection = &stateCopy
	if lo.IsNotEmpty(state.SSID) {
		event.Message = state.SSID
	}

	go s.statusService.Publish(event)
}

func (s *Service) nextGenerationLocked() uint64 {
	s.generation++
	if s.reconnectCancel != nil {
		s.reconnectCancel()
		s.reconnectCancel = nil
	}

	return s.generation
}
