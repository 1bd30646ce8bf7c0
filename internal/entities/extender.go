package entities

type ExtenderGoal string

const (
	GoalStopped   ExtenderGoal = "stopped"
	GoalExtending ExtenderGoal = "extending"
)

func (g ExtenderGoal) String() string {
	return string(g)
}

type ExtenderState string

const (
	ExtenderStopped      ExtenderState = "stopped"
	ExtenderInitializing ExtenderState = "initializing"
	ExtenderExtending    ExtenderState = "extending"
	ExtenderDegraded     ExtenderState = "degraded"
	ExtenderStopping     ExtenderState = "stopping"
)

func (s ExtenderState) String() string {
	return string(s)
}

// ReasonCode is the stable, enumerable code attached to every terminal
// condition surfaced to operators.
type ReasonCode string

const (
	ReasonNone                  ReasonCode = ""
	ReasonHardwareUnavailable   ReasonCode = "hardware_unavailable"
	ReasonModeTransitionFailed  ReasonCode = "mode_transition_failed"
	ReasonUpstreamUnrecoverable ReasonCode = "upstream_unrecoverable"
	ReasonAPStartFailed         ReasonCode = "ap_start_failed"
	ReasonBridgeFailed          ReasonCode = "bridge_activation_failed"
)

// StatusSnapshot carries enough detail to reconstruct current state
// without polling individual components.
type StatusSnapshot struct {
	Goal       ExtenderGoal    `json:"goal"`
	State      ExtenderState   `json:"state"`
	Reason     ReasonCode      `json:"reason,omitempty"`
	Radio      RadioIdentity   `json:"radio"`
	Mode       InterfaceMode   `json:"mode"`
	Connection ConnectionState `json:"connection"`
	AP         APState         `json:"ap"`
	Bridge     BridgeStatus    `json:"bridge"`
	Clients    []ClientRecord  `json:"clients"`
}
