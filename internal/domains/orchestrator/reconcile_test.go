package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

// extendingView is the baseline for goal-extending cases: profiles are
// present, nothing has started yet.
func extendingView() worldview {
	return worldview{
		Goal:               entities.GoalExtending,
		Mode:               entities.InterfaceModeDown,
		Connection:         entities.ConnectionDisconnected,
		AP:                 entities.APStopped,
		Bridge:             entities.BridgeTornDown,
		HasUpstreamProfile: true,
		HasAPProfile:       true,
	}
}

func Test_planReconcile_Extending(t *testing.T) {
	testTable := []struct {
		name     string
		mutate   func(view *worldview)
		expected []actionKind
	}{
		{
			name:     "cold start brings the radio to station mode first",
			mutate:   func(view *worldview) {},
			expected: []actionKind{actionEnsureStationMode},
		},
		{
			name: "station mode reached, virtual AP next",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
			},
			expected: []actionKind{actionCreateVirtualAP},
		},
		{
			name: "radio ready, connect and start AP in the same cycle",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
			},
			expected: []actionKind{actionConnectUpstream, actionStartAP},
		},
		{
			name: "bridge activates only once both legs are up",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionConnected
				view.AP = entities.APRunning
			},
			expected: []actionKind{actionActivateBridge},
		},
		{
			name: "connected but AP still starting plans nothing",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionConnected
				view.AP = entities.APStarting
			},
			expected: nil,
		},
		{
			name: "steady state plans nothing",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionConnected
				view.AP = entities.APRunning
				view.Bridge = entities.BridgeActive
			},
			expected: nil,
		},
		{
			name: "missing upstream profile blocks the whole ladder",
			mutate: func(view *worldview) {
				view.HasUpstreamProfile = false
			},
			expected: nil,
		},
		{
			name: "fatal session is terminal",
			mutate: func(view *worldview) {
				view.Fatal = true
				view.FatalReason = entities.ReasonModeTransitionFailed
			},
			expected: nil,
		},
		{
			name: "mode retry budget exhausted stops retrying",
			mutate: func(view *worldview) {
				view.ModeFailures = 3
			},
			expected: nil,
		},
		{
			name: "AP crash is retried while budget remains",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionConnected
				view.AP = entities.APFailed
				view.APFailures = 2
			},
			expected: []actionKind{actionStartAP},
		},
		{
			name: "AP retry budget exhausted stops retrying",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionConnected
				view.AP = entities.APFailed
				view.APFailures = 3
			},
			expected: nil,
		},
		{
			name: "connect retry budget exhausted stops retrying",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.ConnectFailures = 8
			},
			expected: []actionKind{actionStartAP},
		},
		{
			name: "unrecoverable upstream is not reconnected automatically",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.UpstreamUnrecoverable = true
			},
			expected: []actionKind{actionStartAP},
		},
		{
			name: "upstream loss deactivates the bridge before anything else",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.Connection = entities.ConnectionReconnecting
				view.AP = entities.APRunning
				view.Bridge = entities.BridgeActive
			},
			expected: []actionKind{actionDeactivateBridge},
		},
		{
			name: "in-flight action is not planned twice",
			mutate: func(view *worldview) {
				view.Mode = entities.InterfaceModeStation
				view.VirtualAPReady = true
				view.InFlight = map[actionKind]bool{actionConnectUpstream: true}
			},
			expected: []actionKind{actionStartAP},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			view := extendingView()
			testCase.mutate(&view)

			require.Equal(t, testCase.expected, planReconcile(view))
		})
	}
}

func Test_planReconcile_Stopped(t *testing.T) {
	testTable := []struct {
		name     string
		view     worldview
		expected []actionKind
	}{
		{
			name: "full teardown starts with the bridge",
			view: worldview{
				Goal:           entities.GoalStopped,
				Mode:           entities.InterfaceModeStation,
				VirtualAPReady: true,
				Connection:     entities.ConnectionConnected,
				AP:             entities.APRunning,
				Bridge:         entities.BridgeActive,
			},
			expected: []actionKind{actionDeactivateBridge, actionStopAP, actionDisconnectUpstream},
		},
		{
			name: "virtual AP is deleted once the AP process pair stopped",
			view: worldview{
				Goal:           entities.GoalStopped,
				Mode:           entities.InterfaceModeStation,
				VirtualAPReady: true,
				Connection:     entities.ConnectionDisconnected,
				AP:             entities.APStopped,
				Bridge:         entities.BridgeTornDown,
			},
			expected: []actionKind{actionDeleteVirtualAP},
		},
		{
			name: "radio released last",
			view: worldview{
				Goal:       entities.GoalStopped,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionDisconnected,
				AP:         entities.APStopped,
				Bridge:     entities.BridgeTornDown,
			},
			expected: []actionKind{actionSetModeDown},
		},
		{
			name: "everything down plans nothing",
			view: worldview{
				Goal:       entities.GoalStopped,
				Mode:       entities.InterfaceModeDown,
				Connection: entities.ConnectionDisconnected,
				AP:         entities.APStopped,
				Bridge:     entities.BridgeTornDown,
			},
			expected: nil,
		},
		{
			name: "fatal session still tears down",
			view: worldview{
				Goal:        entities.GoalStopped,
				Mode:        entities.InterfaceModeStation,
				Connection:  entities.ConnectionDisconnected,
				AP:          entities.APFailed,
				Bridge:      entities.BridgeTornDown,
				Fatal:       true,
				FatalReason: entities.ReasonAPStartFailed,
			},
			expected: []actionKind{actionStopAP},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, planReconcile(testCase.view))
		})
	}
}

func Test_computeState(t *testing.T) {
	testTable := []struct {
		name           string
		view           worldview
		expectedState  entities.ExtenderState
		expectedReason entities.ReasonCode
	}{
		{
			name: "stopped goal with everything down",
			view: worldview{
				Goal:       entities.GoalStopped,
				Mode:       entities.InterfaceModeDown,
				Connection: entities.ConnectionDisconnected,
				AP:         entities.APStopped,
				Bridge:     entities.BridgeTornDown,
			},
			expectedState: entities.ExtenderStopped,
		},
		{
			name: "stopped goal mid-teardown",
			view: worldview{
				Goal:       entities.GoalStopped,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionConnected,
				AP:         entities.APRunning,
				Bridge:     entities.BridgeActive,
			},
			expectedState: entities.ExtenderStopping,
		},
		{
			name: "extending goal before first success",
			view: worldview{
				Goal:       entities.GoalExtending,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionAssociating,
				AP:         entities.APStarting,
				Bridge:     entities.BridgeTornDown,
			},
			expectedState: entities.ExtenderInitializing,
		},
		{
			name: "all three layers up",
			view: worldview{
				Goal:       entities.GoalExtending,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionConnected,
				AP:         entities.APRunning,
				Bridge:     entities.BridgeActive,
			},
			expectedState: entities.ExtenderExtending,
		},
		{
			name: "upstream lost after engagement",
			view: worldview{
				Goal:       entities.GoalExtending,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionReconnecting,
				AP:         entities.APRunning,
				Bridge:     entities.BridgeTornDown,
				Engaged:    true,
			},
			expectedState: entities.ExtenderDegraded,
		},
		{
			name: "AP crash after engagement names the failing leg",
			view: worldview{
				Goal:       entities.GoalExtending,
				Mode:       entities.InterfaceModeStation,
				Connection: entities.ConnectionConnected,
				AP:         entities.APFailed,
				Bridge:     entities.BridgeTornDown,
				Engaged:    true,
			},
			expectedState:  entities.ExtenderDegraded,
			expectedReason: entities.ReasonAPStartFailed,
		},
		{
			name: "reconnection budget exhausted",
			view: worldview{
				Goal:                  entities.GoalExtending,
				Mode:                  entities.InterfaceModeStation,
				Connection:            entities.ConnectionDisconnected,
				AP:                    entities.APRunning,
				Bridge:                entities.BridgeTornDown,
				UpstreamUnrecoverable: true,
				Engaged:               true,
			},
			expectedState:  entities.ExtenderDegraded,
			expectedReason: entities.ReasonUpstreamUnrecoverable,
		},
		{
			name: "fatal reason wins over everything else",
			view: worldview{
				Goal:        entities.GoalExtending,
				Mode:        entities.InterfaceModeDown,
				Connection:  entities.ConnectionDisconnected,
				AP:          entities.APStopped,
				Bridge:      entities.BridgeTornDown,
				Fatal:       true,
				FatalReason: entities.ReasonHardwareUnavailable,
			},
			expectedState:  entities.ExtenderDegraded,
			expectedReason: entities.ReasonHardwareUnavailable,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			state, reason := computeState(testCase.view)

			require.Equal(t, testCase.expectedState, state)
			require.Equal(t, testCase.expectedReason, reason)
		})
	}
}
