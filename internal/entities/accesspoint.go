package entities

import (
	"time"
)

type APStateID string

const (
	APStopped  APStateID = "stopped"
	APStarting APStateID = "starting"
	APRunning  APStateID = "running"
	APFailed   APStateID = "failed"
)

func (s APStateID) String() string {
	return string(s)
}

type APState struct {
	ID     APStateID `json:"id"`
	Reason string    `json:"reason,omitempty"`
}

func (s APState) IsRunning() bool {
	return s.ID == APRunning
}

// APProfile is owned by configuration and consumed read-only by the
// access point coordinator.
type APProfile struct {
	SSID     string       `json:"ssid" validate:"required,max=32"`
	Security SecurityType `json:"security" validate:"required,oneof=open wpa2-psk"`
	PSK      string       `json:"psk" validate:"required_unless=Security open,omitempty,min=8,max=63"`
	Channel  int          `json:"channel" validate:"required,min=1,max=11"`

	GatewayCIDR  string `json:"gatewayCidr" validate:"required,cidr"`
	DHCPRangeLo  string `json:"dhcpRangeLo" validate:"required,ip"`
	DHCPRangeHi  string `json:"dhcpRangeHi" validate:"required,ip"`
	DHCPLeaseTTL string `json:"dhcpLeaseTtl" validate:"required"`
}

const ClientIPUnknown = ""

// ClientRecord tracks one associated station, keyed by MAC. The IP stays
// unknown until the DHCP lease is granted; a device may not request DHCP
// immediately after associating.
type ClientRecord struct {
	MAC       string    `json:"mac"`
	IP        string    `json:"ip,omitempty"`
	Hostname  string    `json:"hostname,omitempty"`
	SignalDBM float64   `json:"signalDbm,omitempty"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (c ClientRecord) HasLease() bool {
	return c.IP != ClientIPUnknown
}
