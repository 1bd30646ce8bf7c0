package entities

import (
	"time"
)

type EventType string

const (
	EventModeChanged       EventType = "mode_changed"
	EventConnectionChanged EventType = "connection_state_changed"
	EventAPChanged         EventType = "ap_state_changed"
	EventClientJoined      EventType = "client_joined"
	EventClientLeft        EventType = "client_left"
	EventClientLease       EventType = "client_lease"
	EventBridgeChanged     EventType = "bridge_state_changed"
	EventExtenderChanged   EventType = "extender_state_changed"
	EventLinkQuality       EventType = "link_quality"
	EventHardwareLost      EventType = "hardware_lost"
)

// StatusEvent is one discrete entry of the status stream consumed by the
// GUI and logging collaborators.
type StatusEvent struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`

	Mode       *InterfaceMode   `json:"mode,omitempty"`
	Connection *ConnectionState `json:"connection,omitempty"`
	AP         *APState         `json:"ap,omitempty"`
	Bridge     *BridgeStateID   `json:"bridge,omitempty"`
	Extender   *ExtenderState   `json:"extender,omitempty"`
	Client     *ClientRecord    `json:"client,omitempty"`
	Quality    *LinkQuality     `json:"quality,omitempty"`
	Reason     ReasonCode       `json:"reason,omitempty"`
	Message    string           `json:"message,omitempty"`
}

func NewStatusEvent(eventType EventType) StatusEvent {
	return StatusEvent{
		Type: eventType,
		At:   time.Now(),
	}
}
