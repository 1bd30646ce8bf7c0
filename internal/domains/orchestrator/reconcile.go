package orchestrator

import (
	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

type actionKind string

const (
	actionEnsureStationMode  actionKind = "ensure_station_mode"
	actionCreateVirtualAP    actionKind = "create_virtual_ap"
	actionConnectUpstream    actionKind = "connect_upstream"
	actionStartAP            actionKind = "start_ap"
	actionActivateBridge     actionKind = "activate_bridge"
	actionDeactivateBridge   actionKind = "deactivate_bridge"
	actionStopAP             actionKind = "stop_ap"
	actionDisconnectUpstream actionKind = "disconnect_upstream"
	actionDeleteVirtualAP    actionKind = "delete_virtual_ap"
	actionSetModeDown        actionKind = "set_mode_down"
)

// worldview is the explicit snapshot of component states one
// reconciliation step plans over. It is assembled by the loop and never
// mutated by planning.
type worldview struct {
	Goal entities.ExtenderGoal

	Mode           entities.InterfaceMode
	VirtualAPReady bool

	Connection            entities.ConnectionStateID
	UpstreamUnrecoverable bool

	AP     entities.APStateID
	Bridge entities.BridgeStateID

	HasUpstreamProfile bool
	HasAPProfile       bool

	ModeFailures    int
	APFailures      int
	ConnectFailures int

	Fatal       bool
	FatalReason entities.ReasonCode

	// Engaged reports whether the current goal epoch already reached
	// Extending once; it distinguishes Initializing from Degraded.
	Engaged bool

	InFlight map[actionKind]bool
}

// planReconcile decides which actions bring the observed state toward
// the goal. Pure: it issues no I/O and never mutates the view, so the
// control logic tests independently of the components feeding it.
func planReconcile(view worldview) (plan []actionKind) {
	planned := make(map[actionKind]bool)
	emit := func(action actionKind) {
		if view.InFlight[action] || planned[action] {
			return
		}

		planned[action] = true
		plan = append(plan, action)
	}

	// the bridge never stays active with either leg down
	if view.Bridge == entities.BridgeActive &&
		(view.Connection != entities.ConnectionConnected || view.AP != entities.APRunning) {
		emit(actionDeactivateBridge)
	}

	if view.Goal == entities.GoalStopped {
		if view.Bridge != entities.BridgeTornDown {
			emit(actionDeactivateBridge)
		}
		if view.AP != entities.APStopped {
			emit(actionStopAP)
		}
		if view.Connection != entities.ConnectionDisconnected {
			emit(actionDisconnectUpstream)
		}

		// the radio is released only after both halves let go of it
		if view.AP == entities.APStopped && view.VirtualAPReady {
			emit(actionDeleteVirtualAP)
		}
		if view.Mode != entities.InterfaceModeDown &&
			view.AP == entities.APStopped &&
			view.Connection == entities.ConnectionDisconnected &&
			!view.VirtualAPReady {
			emit(actionSetModeDown)
		}

		return plan
	}

	// goal = Extending
	if view.Fatal {
		// terminal until an external command resets the session
		return plan
	}

	if !view.HasUpstreamProfile || !view.HasAPProfile {
		return plan
	}

	if view.Mode != entities.InterfaceModeStation {
		if view.ModeFailures < constants.ModeTransitionRetryLimit {
			emit(actionEnsureStationMode)
		}

		return plan
	}

	if !view.VirtualAPReady {
		emit(actionCreateVirtualAP)
		return plan
	}

	if view.Connection == entities.ConnectionDisconnected &&
		!view.UpstreamUnrecoverable &&
		view.ConnectFailures < constants.UpstreamConnectRetryLimit {
		emit(actionConnectUpstream)
	}

	if (view.AP == entities.APStopped || view.AP == entities.APFailed) &&
		view.APFailures < constants.APStartRetryLimit {
		emit(actionStartAP)
	}

	if view.Connection == entities.ConnectionConnected &&
		view.AP == entities.APRunning &&
		view.Bridge != entities.BridgeActive {
		emit(actionActivateBridge)
	}

	return plan
}

// computeState derives the overall extender state from the same view
// reconciliation plans over.
func computeState(view worldview) (state entities.ExtenderState, reason entities.ReasonCode) {
	if view.Goal == entities.GoalStopped {
		if view.Bridge == entities.BridgeTornDown &&
			view.AP == entities.APStopped &&
			view.Connection == entities.ConnectionDisconnected &&
			view.Mode == entities.InterfaceModeDown &&
			!view.VirtualAPReady {
			return entities.ExtenderStopped, entities.ReasonNone
		}

		return entities.ExtenderStopping, entities.ReasonNone
	}

	if view.Fatal {
		return entities.ExtenderDegraded, view.FatalReason
	}

	if view.UpstreamUnrecoverable {
		return entities.ExtenderDegraded, entities.ReasonUpstreamUnrecoverable
	}

	if view.Connection == entities.ConnectionConnected &&
		view.AP == entities.APRunning &&
		view.Bridge == entities.BridgeActive {
		return entities.ExtenderExtending, entities.ReasonNone
	}

	if view.Engaged {
		if view.AP == entities.APFailed {
			return entities.ExtenderDegraded, entities.ReasonAPStartFailed
		}

		return entities.ExtenderDegraded, entities.ReasonNone
	}

	return entities.ExtenderInitializing, entities.ReasonNone
}
