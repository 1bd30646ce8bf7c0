package ifmode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const verifyPollInterval = 500 * time.Millisecond

// APInterfaceName returns the deterministic name of the AP sub-interface
// derived from a base interface, whether or not it exists yet.
func APInterfaceName(base string) string {
	return fmt.Sprintf("%s_%s", base, constants.APInterfaceSuffix)
}

type (
	IShellService interface {
		Exec(command commands.ICommand) (err error)
	}

	IRadioService interface {
		CurrentMode(interfaceName string) (mode entities.InterfaceMode, err error)
	}
)

// Service owns the operational mode of a single radio. Transitions are
// serialized; concurrent mode operations on one radio are undefined at
// the hardware level.
type Service struct {
	shellService IShellService
	radioService IRadioService

	interfaceName string
	identity      entities.RadioIdentity

	mx               sync.Mutex
	virtualInterface string
}

func NewService(shellService IShellService, radioService IRadioService, identity entities.RadioIdentity) *Service {
	return &Service{
		shellService:  shellService,
		radioService:  radioService,
		interfaceName: identity.InterfaceName,
		identity:      identity,
	}
}

func (s *Service) InterfaceName() string {
	return s.interfaceName
}

// VirtualAPInterface returns the name of the AP sub-interface, or empty
// when none exists.
func (s *Service) VirtualAPInterface() string {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.virtualInterface
}

// RequestMode transitions the radio to the target mode. A request that
// arrives while another transition is running is refused, not queued.
// On verification failure the prior mode is restored so a retry starts
// from clean state.
func (s *Service) RequestMode(ctx context.Context, target entities.InterfaceMode) (err error) {
	if !s.mx.TryLock() {
		return fmt.Errorf("RequestMode: %s: %w", s.interfaceName, errs.ErrModeTransitionInFlight)
	}
	defer s.mx.Unlock()

	prior, err := s.radioService.CurrentMode(s.interfaceName)
	if err != nil {
		return fmt.Errorf("RequestMode: %w", err)
	}

	if prior == target {
		return nil
	}

	log.Info().
		Str("interface", s.interfaceName).
		Str("from", prior.String()).
		Str("to", target.String()).
		Msg("RequestMode: starting mode transition")

	if err = s.applyMode(ctx, target); err == nil {
		if err = s.verifyMode(ctx, target); err == nil {
			return nil
		}
	}

	cause := err

	// roll back to the prior mode so the caller can retry from a known state
	if rollbackErr := s.applyMode(ctx, prior); rollbackErr != nil {
		log.Error().
			Err(rollbackErr).
			Str("interface", s.interfaceName).
			Str("mode", prior.String()).
			Msg("RequestMode: rollback failed")
	} else if verifyErr := s.verifyMode(ctx, prior); verifyErr != nil {
		log.Error().
			Err(verifyErr).
			Str("interface", s.interfaceName).
			Str("mode", prior.String()).
			Msg("RequestMode: rollback verification failed")
	}

	return fmt.Errorf("RequestMode: from %s to %s: %w: %w",
		prior, target, errs.ErrModeTransitionFailed, cause)
}

// CreateVirtualAP adds the __ap sub-interface for concurrent-capable
// radios. No-op when the sub-interface already exists.
func (s *Service) CreateVirtualAP(ctx context.Context) (virtualName string, err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.virtualInterface != "" {
		return s.virtualInterface, nil
	}

	if !s.identity.SupportsConcurrent {
		return "", fmt.Errorf("CreateVirtualAP: %s: %w", s.interfaceName, errs.ErrUnsupportedHardware)
	}

	virtualName = APInterfaceName(s.interfaceName)
	if err = s.shellService.Exec(commands.NewAddVirtualAPCmd(s.interfaceName, virtualName)); err != nil {
		return "", fmt.Errorf("CreateVirtualAP: %w", err)
	}

	if err = s.shellService.Exec(commands.NewLinkSetUpCmd(virtualName)); err != nil {
		// do not leave a half-created sub-interface behind
		if delErr := s.shellService.Exec(commands.NewDelIfaceCmd(virtualName)); delErr != nil {
			log.Error().Err(delErr).Str("interface", virtualName).Msg("CreateVirtualAP: cleanup failed")
		}

		return "", fmt.Errorf("CreateVirtualAP: %w", err)
	}

	s.virtualInterface = virtualName
	log.Info().Str("interface", virtualName).Msg("CreateVirtualAP: virtual AP interface created")

	return virtualName, nil
}

// DeleteVirtualAP removes the AP sub-interface. No-op when none exists.
func (s *Service) DeleteVirtualAP() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.virtualInterface == "" {
		return nil
	}

	if err = s.shellService.Exec(commands.NewDelIfaceCmd(s.virtualInterface)); err != nil {
		return fmt.Errorf("DeleteVirtualAP: %w", err)
	}

	log.Info().Str("interface", s.virtualInterface).Msg("DeleteVirtualAP: virtual AP interface deleted")
	s.virtualInterface = ""

	return nil
}

func (s *Service) applyMode(ctx context.Context, target entities.InterfaceMode) (err error) {
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("applyMode: %w", err)
	}

	if target == entities.InterfaceModeDown {
		if err = s.shellService.Exec(commands.NewLinkSetDownCmd(s.interfaceName)); err != nil {
			return fmt.Errorf("applyMode: %w", err)
		}

		return nil
	}

	// the nl80211 interface type can only change while the link is down
	if err = s.shellService.Exec(commands.NewLinkSetDownCmd(s.interfaceName)); err != nil {
		return fmt.Errorf("applyMode: %w", err)
	}

	ifaceType := "managed"
	if target == entities.InterfaceModeAccessPoint {
		ifaceType = "__ap"
	}

	if err = s.shellService.Exec(commands.NewSetIfaceTypeCmd(s.interfaceName, ifaceType)); err != nil {
		return fmt.Errorf("applyMode: %w", err)
	}

	if err = s.shellService.Exec(commands.NewLinkSetUpCmd(s.interfaceName)); err != nil {
		return fmt.Errorf("applyMode: %w", err)
	}

	return nil
}

// verifyMode polls the mode read path until the interface reports the
// target mode or the verification window closes.
func (s *Service) verifyMode(ctx context.Context, target entities.InterfaceMode) (err error) {
	deadlineCtx, cancel := context.WithTimeout(ctx, constants.ModeVerifyTimeout)
	defer cancel()

	ticker := time.NewTicker(verifyPollInterval)
	defer ticker.Stop()

	for {
		mode, modeErr := s.radioService.CurrentMode(s.interfaceName)
		if modeErr == nil && mode == target {
			return nil
		}

		select {
		case <-deadlineCtx.Done():
			if modeErr != nil {
				return fmt.Errorf("verifyMode: %w", modeErr)
			}

			return fmt.Errorf("verifyMode: interface reports %s, expected %s", mode, target)

		case <-ticker.C:
		}
	}
}
