package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/domains/orchestrator/orchestrator_mocks"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

var errActionFailed = errors.New("action failed")

// newLoopService builds a service with only the fields the loop-side
// handlers touch; no components, no running loop.
func newLoopService(t *testing.T) (*Service, *orchestrator_mocks.MockIStatusService) {
	t.Helper()

	statusService := orchestrator_mocks.NewMockIStatusService(t)

	service := &Service{
		statusService: statusService,

		goal:     entities.GoalExtending,
		state:    entities.ExtenderStopped,
		inFlight: make(map[actionKind]bool),
	}

	return service, statusService
}

func Test_handleActionResult_StaleEpochDiscarded(t *testing.T) {
	service, _ := newLoopService(t)
	service.epoch = 2
	service.inFlight[actionStartAP] = true

	service.handleActionResult(actionResult{
		action: actionStartAP,
		epoch:  1,
		err:    errActionFailed,
	})

	require.False(t, service.inFlight[actionStartAP])
	require.Equal(t, 0, service.apFailures)
	require.False(t, service.fatal)
}

func Test_handleActionResult_FailureBudgets(t *testing.T) {
	testTable := []struct {
		name           string
		goal           entities.ExtenderGoal
		action         actionKind
		failures       int
		expectedFatal  bool
		expectedReason entities.ReasonCode
	}{
		{
			name:           "ap start failures below the budget stay recoverable",
			goal:           entities.GoalExtending,
			action:         actionStartAP,
			failures:       2,
			expectedFatal:  false,
			expectedReason: entities.ReasonNone,
		},
		{
			name:           "ap start budget exhausted is terminal",
			goal:           entities.GoalExtending,
			action:         actionStartAP,
			failures:       3,
			expectedFatal:  true,
			expectedReason: entities.ReasonAPStartFailed,
		},
		{
			name:           "connect failures below the budget stay recoverable",
			goal:           entities.GoalExtending,
			action:         actionConnectUpstream,
			failures:       7,
			expectedFatal:  false,
			expectedReason: entities.ReasonNone,
		},
		{
			name:           "connect budget exhausted is terminal",
			goal:           entities.GoalExtending,
			action:         actionConnectUpstream,
			failures:       8,
			expectedFatal:  true,
			expectedReason: entities.ReasonUpstreamUnrecoverable,
		},
		{
			name:           "mode budget exhausted while extending is terminal",
			goal:           entities.GoalExtending,
			action:         actionEnsureStationMode,
			failures:       3,
			expectedFatal:  true,
			expectedReason: entities.ReasonModeTransitionFailed,
		},
		{
			name:           "mode failures while stopping never degrade",
			goal:           entities.GoalStopped,
			action:         actionSetModeDown,
			failures:       5,
			expectedFatal:  false,
			expectedReason: entities.ReasonNone,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			service, _ := newLoopService(t)
			service.goal = testCase.goal

			for i := 0; i < testCase.failures; i++ {
				service.handleActionResult(actionResult{
					action: testCase.action,
					err:    errActionFailed,
				})
			}

			require.Equal(t, testCase.expectedFatal, service.fatal)
			require.Equal(t, testCase.expectedReason, service.fatalReason)
		})
	}
}

func Test_handleActionResult_SuccessResets(t *testing.T) {
	service, _ := newLoopService(t)

	service.handleActionResult(actionResult{action: actionEnsureStationMode, err: errActionFailed})
	service.handleActionResult(actionResult{action: actionEnsureStationMode, err: errActionFailed})
	require.Equal(t, 2, service.modeFailures)

	service.handleActionResult(actionResult{action: actionEnsureStationMode})
	require.Equal(t, 0, service.modeFailures)

	service.handleActionResult(actionResult{action: actionConnectUpstream, err: errActionFailed})
	require.Equal(t, 1, service.connectFailures)

	service.handleActionResult(actionResult{action: actionConnectUpstream})
	require.Equal(t, 0, service.connectFailures)

	service.handleActionResult(actionResult{action: actionCreateVirtualAP})
	require.True(t, service.virtualAPReady)

	service.handleActionResult(actionResult{action: actionDeleteVirtualAP})
	require.False(t, service.virtualAPReady)
}

func Test_handleActionResult_BridgeFailurePublishes(t *testing.T) {
	service, statusService := newLoopService(t)

	statusService.EXPECT().
		Publish(mock.MatchedBy(func(event entities.StatusEvent) bool {
			return event.Type == entities.EventBridgeChanged &&
				event.Reason == entities.ReasonBridgeFailed
		})).
		Return().
		Times(1)

	service.handleActionResult(actionResult{
		action: actionActivateBridge,
		err:    errActionFailed,
	})

	require.False(t, service.fatal, "bridge failures are retried, never terminal")
}

func Test_handleEvent_APCrashCountsAgainstBudget(t *testing.T) {
	service, _ := newLoopService(t)

	failedState := entities.APState{ID: entities.APFailed}
	event := entities.NewStatusEvent(entities.EventAPChanged)
	event.AP = &failedState

	for i := 0; i < 3; i++ {
		service.handleEvent(event)
	}

	require.True(t, service.fatal)
	require.Equal(t, entities.ReasonAPStartFailed, service.fatalReason)
}

func Test_setState_PublishesOnlyOnChange(t *testing.T) {
	service, statusService := newLoopService(t)

	statusService.EXPECT().
		Publish(mock.MatchedBy(func(event entities.StatusEvent) bool {
			return event.Type == entities.EventExtenderChanged &&
				event.Extender != nil && *event.Extender == entities.ExtenderExtending
		})).
		Return().
		Times(1)

	service.setState(entities.ExtenderExtending, entities.ReasonNone)
	service.setState(entities.ExtenderExtending, entities.ReasonNone)

	require.Equal(t, entities.ExtenderExtending, service.state)
}
