package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

const shutdownTimeout = 30 * time.Second

type (
	IRadioService interface {
		CurrentMode(interfaceName string) (mode entities.InterfaceMode, err error)
	}

	IModeService interface {
		InterfaceName() string
		VirtualAPInterface() string
		RequestMode(ctx context.Context, target entities.InterfaceMode) (err error)
		CreateVirtualAP(ctx context.Context) (virtualName string, err error)
		DeleteVirtualAP() (err error)
	}

	IUpstreamService interface {
		Connect(ctx context.Context, profile entities.UpstreamProfile) (err error)
		Disconnect() (err error)
		ManualRetry(ctx context.Context) (err error)
		CurrentState() entities.ConnectionState
		EnableReconnect(enabled bool)
		IsUnrecoverable() bool
	}

	IAPService interface {
		Start(ctx context.Context, profile entities.APProfile) (err error)
		Stop() (err error)
		CurrentState() entities.APState
		Clients() []entities.ClientRecord
	}

	IBridgeService interface {
		Activate(upstreamInterface, apInterface string) (err error)
		Deactivate() (err error)
		CurrentState() entities.BridgeStateID
		Status() entities.BridgeStatus
	}

	IProfileService interface {
		SaveUpstreamProfile(profile entities.UpstreamProfile) (err error)
		LoadUpstreamProfile() (profile entities.UpstreamProfile, err error)
		SaveAPProfile(profile entities.APProfile) (err error)
		LoadAPProfile() (profile entities.APProfile, err error)
		SaveGoal(goal entities.ExtenderGoal) (err error)
		LoadGoal() (goal entities.ExtenderGoal, err error)
	}

	IStatusService interface {
		Publish(event entities.StatusEvent)
		SubscribeEvents() <-chan entities.StatusEvent
	}
)

type commandData struct {
	apply      func() error
	resultChan chan error
}

type actionResult struct {
	action actionKind
	epoch  uint64
	err    error
}

// Service is the top level control loop and the single authority for
// requesting transitions on the other components. It converges the
// observed component states toward the operator goal; the goal itself is
// only ever mutated by external command.
type Service struct {
	radioService    IRadioService
	modeService     IModeService
	upstreamService IUpstreamService
	apService       IAPService
	bridgeService   IBridgeService
	profileService  IProfileService
	statusService   IStatusService

	identity entities.RadioIdentity

	commandChan   chan commandData
	actionResults chan actionResult

	// loop-owned, touched only from Run
	goal            entities.ExtenderGoal
	state           entities.ExtenderState
	reason          entities.ReasonCode
	upstreamProfile *entities.UpstreamProfile
	apProfile       *entities.APProfile
	virtualAPReady  bool
	modeFailures    int
	apFailures      int
	connectFailures int
	fatal           bool
	fatalReason     entities.ReasonCode
	engaged         bool
	epoch           uint64
	inFlight        map[actionKind]bool
}

func NewService(radioService IRadioService, modeService IModeService, upstreamService IUpstreamService,
	apService IAPService, bridgeService IBridgeService, profileService IProfileService,
	statusService IStatusService, identity entities.RadioIdentity) *Service {
	return &Service{
		radioService:    radioService,
		modeService:     modeService,
		upstreamService: upstreamService,
		apService:       apService,
		bridgeService:   bridgeService,
		profileService:  profileService,
		statusService:   statusService,

		identity: identity,

		commandChan:   make(chan commandData),
		actionResults: make(chan actionResult, 16),

		goal:     entities.GoalStopped,
		state:    entities.ExtenderStopped,
		inFlight: make(map[actionKind]bool),
	}
}

// SetGoal replaces the operator goal. Setting the goal again also exits
// a terminal Degraded condition: failure counters reset and recovery
// restarts from scratch.
func (s *Service) SetGoal(goal entities.ExtenderGoal) (err error) {
	if err = s.perform(func() error {
		if err := s.profileService.SaveGoal(goal); err != nil {
			return err
		}

		s.goal = goal
		s.epoch++
		s.engaged = false
		s.fatal = false
		s.fatalReason = entities.ReasonNone
		s.modeFailures = 0
		s.apFailures = 0
		s.connectFailures = 0
		s.upstreamService.EnableReconnect(goal == entities.GoalExtending)

		log.Info().
			Str("goal", goal.String()).
			Uint64("epoch", s.epoch).
			Msg("SetGoal: goal updated")

		return nil
	}); err != nil {
		return fmt.Errorf("SetGoal: %w", err)
	}

	return nil
}

// SetUpstreamProfile stores a new upstream profile. A new profile exits
// the UpstreamUnrecoverable terminal condition.
func (s *Service) SetUpstreamProfile(profile entities.UpstreamProfile) (err error) {
	if err = s.perform(func() error {
		if err := s.profileService.SaveUpstreamProfile(profile); err != nil {
			return err
		}

		s.upstreamProfile = &profile
		s.fatal = false
		s.fatalReason = entities.ReasonNone
		s.modeFailures = 0
		s.connectFailures = 0

		if s.upstreamService.IsUnrecoverable() {
			if disconnectErr := s.upstreamService.Disconnect(); disconnectErr != nil {
				log.Warn().Err(disconnectErr).Msg("SetUpstreamProfile: disconnect stale session")
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("SetUpstreamProfile: %w", err)
	}

	return nil
}

func (s *Service) SetAPProfile(profile entities.APProfile) (err error) {
	if err = s.perform(func() error {
		if err := s.profileService.SaveAPProfile(profile); err != nil {
			return err
		}

		s.apProfile = &profile
		s.apFailures = 0

		// restart the pair so the new profile takes effect
		if s.apService.CurrentState().IsRunning() {
			if stopErr := s.apService.Stop(); stopErr != nil {
				log.Warn().Err(stopErr).Msg("SetAPProfile: stop running pair")
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("SetAPProfile: %w", err)
	}

	return nil
}

// ManualRetry exits a terminal Degraded condition without changing the
// goal or the profiles.
func (s *Service) ManualRetry() (err error) {
	if err = s.perform(func() error {
		s.fatal = false
		s.fatalReason = entities.ReasonNone
		s.modeFailures = 0
		s.apFailures = 0
		s.connectFailures = 0

		if s.upstreamService.IsUnrecoverable() {
			if disconnectErr := s.upstreamService.Disconnect(); disconnectErr != nil {
				log.Warn().Err(disconnectErr).Msg("ManualRetry: disconnect stale session")
			}
		}

		log.Info().Msg("ManualRetry: retry requested")

		return nil
	}); err != nil {
		return fmt.Errorf("ManualRetry: %w", err)
	}

	return nil
}

// Snapshot assembles the full status view. It carries enough detail to
// reconstruct current state without polling individual components.
func (s *Service) Snapshot() (snapshot entities.StatusSnapshot, err error) {
	if err = s.perform(func() error {
		snapshot = s.snapshotLocked()
		return nil
	}); err != nil {
		return snapshot, fmt.Errorf("Snapshot: %w", err)
	}

	return snapshot, nil
}

// perform runs fn on the loop goroutine and waits for its result.
func (s *Service) perform(fn func() error) (err error) {
	data := commandData{
		apply:      fn,
		resultChan: make(chan error, 1),
	}

	s.commandChan <- data

	return <-data.resultChan
}

// Run starts the reconciliation loop. The loop is the single writer of
// cross component decisions; long operations run on a worker pool and
// report back as results, the loop itself never blocks on them.
func (s *Service) Run(ctx context.Context) {
	events := s.statusService.SubscribeEvents()

	actionPool := pool.New()
	defer actionPool.Wait()

	s.restore()

	ticker := time.NewTicker(constants.ReconcileTick)
	defer ticker.Stop()

	s.reconcile(ctx, actionPool)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return

		case data := <-s.commandChan:
			data.resultChan <- data.apply()
			s.reconcile(ctx, actionPool)

		case event, ok := <-events:
			if !ok {
				return
			}

			s.handleEvent(event)
			s.reconcile(ctx, actionPool)

		case result := <-s.actionResults:
			s.handleActionResult(result)
			s.reconcile(ctx, actionPool)

		case <-ticker.C:
			s.reconcile(ctx, actionPool)
		}
	}
}

// restore resumes the persisted goal and profiles after a restart.
func (s *Service) restore() {
	goal, err := s.profileService.LoadGoal()
	if err != nil {
		log.Error().Err(err).Msg("restore: load goal error")
	} else {
		s.goal = goal
	}

	if profile, loadErr := s.profileService.LoadUpstreamProfile(); loadErr == nil {
		s.upstreamProfile = &profile
	} else if !errors.Is(loadErr, errs.ErrProfileNotFound) {
		log.Error().Err(loadErr).Msg("restore: load upstream profile error")
	}

	if profile, loadErr := s.profileService.LoadAPProfile(); loadErr == nil {
		s.apProfile = &profile
	} else if !errors.Is(loadErr, errs.ErrProfileNotFound) {
		log.Error().Err(loadErr).Msg("restore: load ap profile error")
	}

	s.upstreamService.EnableReconnect(s.goal == entities.GoalExtending)

	log.Info().
		Str("goal", s.goal.String()).
		Bool("hasUpstreamProfile", s.upstreamProfile != nil).
		Bool("hasAPProfile", s.apProfile != nil).
		Msg("restore: resumed persisted state")
}

func (s *Service) reconcile(ctx context.Context, actionPool *pool.Pool) {
	view := s.currentView()

	state, reason := computeState(view)
	s.setState(state, reason)
	if state == entities.ExtenderExtending {
		s.engaged = true
	}

	for _, action := range planReconcile(view) {
		s.dispatch(ctx, actionPool, action)
	}
}

// currentView snapshots component states for one reconciliation step.
func (s *Service) currentView() worldview {
	mode, err := s.radioService.CurrentMode(s.modeService.InterfaceName())
	if err != nil {
		mode = entities.InterfaceModeDown

		if errors.Is(err, errs.ErrNoSuchInterface) {
			s.onHardwareLost()
		} else {
			log.Error().Err(err).Msg("currentView: read mode error")
		}
	}

	return worldview{
		Goal: s.goal,

		Mode:           mode,
		VirtualAPReady: s.virtualAPReady,

		Connection:            s.upstreamService.CurrentState().ID,
		UpstreamUnrecoverable: s.upstreamService.IsUnrecoverable(),

		AP:     s.apService.CurrentState().ID,
		Bridge: s.bridgeService.CurrentState(),

		HasUpstreamProfile: s.upstreamProfile != nil,
		HasAPProfile:       s.apProfile != nil,

		ModeFailures:    s.modeFailures,
		APFailures:      s.apFailures,
		ConnectFailures: s.connectFailures,

		Fatal:       s.fatal,
		FatalReason: s.fatalReason,
		Engaged:     s.engaged,

		InFlight: s.inFlight,
	}
}

// onHardwareLost marks the session fatally degraded: the radio is gone
// and no retry can bring it back without external intervention.
func (s *Service) onHardwareLost() {
	if s.fatal && s.fatalReason == entities.ReasonHardwareUnavailable {
		return
	}

	s.fatal = true
	s.fatalReason = entities.ReasonHardwareUnavailable
	s.virtualAPReady = false

	event := entities.NewStatusEvent(entities.EventHardwareLost)
	event.Reason = entities.ReasonHardwareUnavailable
	event.Message = fmt.Sprintf("interface %s disappeared", s.modeService.InterfaceName())
	s.statusService.Publish(event)

	log.Error().
		Str("interface", s.modeService.InterfaceName()).
		Msg("onHardwareLost: radio lost")
}

func (s *Service) dispatch(ctx context.Context, actionPool *pool.Pool, action actionKind) {
	if s.inFlight[action] {
		return
	}

	s.inFlight[action] = true
	epoch := s.epoch

	var upstreamProfile entities.UpstreamProfile
	if s.upstreamProfile != nil {
		upstreamProfile = *s.upstreamProfile
	}
	var apProfile entities.APProfile
	if s.apProfile != nil {
		apProfile = *s.apProfile
	}

	log.Debug().
		Str("action", string(action)).
		Uint64("epoch", epoch).
		Msg("dispatch: action started")

	actionPool.Go(func() {
		err := s.execute(ctx, action, upstreamProfile, apProfile)
		s.actionResults <- actionResult{
			action: action,
			epoch:  epoch,
			err:    err,
		}
	})
}

func (s *Service) execute(ctx context.Context, action actionKind,
	upstreamProfile entities.UpstreamProfile, apProfile entities.APProfile) (err error) {
	switch action {
	case actionEnsureStationMode:
		return s.modeService.RequestMode(ctx, entities.InterfaceModeStation)
	case actionCreateVirtualAP:
		_, err = s.modeService.CreateVirtualAP(ctx)
		return err
	case actionConnectUpstream:
		return s.upstreamService.Connect(ctx, upstreamProfile)
	case actionStartAP:
		return s.apService.Start(ctx, apProfile)
	case actionActivateBridge:
		return s.bridgeService.Activate(s.modeService.InterfaceName(), s.modeService.VirtualAPInterface())
	case actionDeactivateBridge:
		return s.bridgeService.Deactivate()
	case actionStopAP:
		return s.apService.Stop()
	case actionDisconnectUpstream:
		return s.upstreamService.Disconnect()
	case actionDeleteVirtualAP:
		return s.modeService.DeleteVirtualAP()
	case actionSetModeDown:
		return s.modeService.RequestMode(ctx, entities.InterfaceModeDown)
	default:
		return fmt.Errorf("execute: unknown action %s", action)
	}
}

// handleActionResult folds a completed action back into loop state.
// Results from a stale goal epoch are discarded: by the time a slow
// operation finished, the goal it served may no longer exist.
func (s *Service) handleActionResult(result actionResult) {
	delete(s.inFlight, result.action)

	if result.epoch != s.epoch {
		log.Info().
			Str("action", string(result.action)).
			Uint64("epoch", result.epoch).
			Uint64("currentEpoch", s.epoch).
			Msg("handleActionResult: stale result discarded")

		return
	}

	if result.err == nil {
		switch result.action {
		case actionEnsureStationMode:
			s.modeFailures = 0
		case actionCreateVirtualAP:
			s.virtualAPReady = true
		case actionDeleteVirtualAP:
			s.virtualAPReady = false
		case actionConnectUpstream:
			s.connectFailures = 0
		case actionStartAP:
			s.apFailures = 0
		}

		return
	}

	log.Error().
		Err(result.err).
		Str("action", string(result.action)).
		Msg("handleActionResult: action failed")

	switch result.action {
	case actionEnsureStationMode, actionCreateVirtualAP, actionSetModeDown:
		s.modeFailures++
		if s.modeFailures >= constants.ModeTransitionRetryLimit && s.goal == entities.GoalExtending {
			s.fatal = true
			s.fatalReason = entities.ReasonModeTransitionFailed
		}

	case actionConnectUpstream:
		// initial association failures share the reconnect budget; past
		// it the session is as dead as a lost link
		s.connectFailures++
		if s.connectFailures >= constants.UpstreamConnectRetryLimit {
			s.fatal = true
			s.fatalReason = entities.ReasonUpstreamUnrecoverable
		}

	case actionStartAP:
		s.apFailures++
		if s.apFailures >= constants.APStartRetryLimit {
			s.fatal = true
			s.fatalReason = entities.ReasonAPStartFailed
		}

	case actionActivateBridge:
		// fully reversed by the coordinator, retried once both legs
		// hold again
		event := entities.NewStatusEvent(entities.EventBridgeChanged)
		event.Reason = entities.ReasonBridgeFailed
		event.Message = result.err.Error()
		s.statusService.Publish(event)
	}
}

func (s *Service) handleEvent(event entities.StatusEvent) {
	switch event.Type {
	case entities.EventAPChanged:
		// a crash of the running pair counts against the start bound
		if event.AP != nil && event.AP.ID == entities.APFailed {
			s.apFailures++
			if s.apFailures >= constants.APStartRetryLimit {
				s.fatal = true
				s.fatalReason = entities.ReasonAPStartFailed
			}
		}

	case entities.EventExtenderChanged:
		// our own publication looping back
	}
}

func (s *Service) setState(state entities.ExtenderState, reason entities.ReasonCode) {
	if s.state == state && s.reason == reason {
		return
	}

	log.Info().
		Str("old", s.state.String()).
		Str("new", state.String()).
		Str("reason", string(reason)).
		Msg("setState: extender state changed")

	s.state = state
	s.reason = reason

	event := entities.NewStatusEvent(entities.EventExtenderChanged)
	stateCopy := state
	event.Extender = &stateCopy
	event.Reason = reason
	s.statusService.Publish(event)
}

func (s *Service) snapshotLocked() entities.StatusSnapshot {
	mode, err := s.radioService.CurrentMode(s.modeService.InterfaceName())
	if err != nil {
		mode = entities.InterfaceModeDown
	}

	return entities.StatusSnapshot{
		Goal:       s.goal,
		State:      s.state,
		Reason:     s.reason,
		Radio:      s.identity,
		Mode:       mode,
		Connection: s.upstreamService.CurrentState(),
		AP:         s.apService.CurrentState(),
		Bridge:     s.bridgeService.Status(),
		Clients:    s.apService.Clients(),
	}
}

// shutdown resets every component to its down baseline. Components are
// torn down directly: the loop is exiting and no more action results
// will be consumed.
func (s *Service) shutdown() {
	log.Info().Msg("shutdown: resetting components")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.bridgeService.Deactivate(); err != nil {
		log.Error().Err(err).Msg("shutdown: bridge deactivate error")
	}

	if err := s.apService.Stop(); err != nil {
		log.Error().Err(err).Msg("shutdown: ap stop error")
	}

	if err := s.upstreamService.Disconnect(); err != nil {
		log.Error().Err(err).Msg("shutdown: upstream disconnect error")
	}

	if s.virtualAPReady {
		if err := s.modeService.DeleteVirtualAP(); err != nil {
			log.Error().Err(err).Msg("shutdown: delete virtual ap error")
		}
	}

	if !s.fatal {
		if err := s.modeService.RequestMode(ctx, entities.InterfaceModeDown); err != nil {
			log.Error().Err(err).Msg("shutdown: mode down error")
		}
	}
}
