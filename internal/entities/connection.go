package entities

import (
	"time"
)

type ConnectionStateID string

const (
	ConnectionDisconnected ConnectionStateID = "disconnected"
	ConnectionScanning     ConnectionStateID = "scanning"
	ConnectionAssociating  ConnectionStateID = "associating"
	ConnectionConnected    ConnectionStateID = "connected"
	ConnectionReconnecting ConnectionStateID = "reconnecting"
)

func (s ConnectionStateID) String() string {
	return string(s)
}

// ConnectionState is owned exclusively by the upstream connection manager;
// everyone else gets copies.
type ConnectionState struct {
	ID      ConnectionStateID `json:"id"`
	SSID    string            `json:"ssid,omitempty"`
	Attempt int               `json:"attempt,omitempty"`
	Backoff time.Duration     `json:"backoff,omitempty"`
}

func (s ConnectionState) IsConnected() bool {
	return s.ID == ConnectionConnected
}

type SecurityType string

const (
	SecurityOpen    SecurityType = "open"
	SecurityWPAPSK  SecurityType = "wpa-psk"
	SecurityWPA2PSK SecurityType = "wpa2-psk"
)

// UpstreamProfile is created by configuration input and read-only to the
// connection manager.
type UpstreamProfile struct {
	SSID     string       `json:"ssid" validate:"required,max=32"`
	Security SecurityType `json:"security" validate:"required,oneof=open wpa-psk wpa2-psk"`
	PSK      string       `json:"psk" validate:"required_unless=Security open,omitempty,min=8,max=63"`

	// LastChannel is the channel the network was last seen on, used as a
	// scan hint only.
	LastChannel int `json:"lastChannel" validate:"omitempty,min=1,max=196"`
}

type ScanResult struct {
	SSID      string       `json:"ssid"`
	BSSID     string       `json:"bssid"`
	Channel   int          `json:"channel"`
	SignalDBM float64      `json:"signalDbm"`
	Security  SecurityType `json:"security"`
}

// LinkQuality is sampled on a fixed interval and is purely observational.
type LinkQuality struct {
	SignalDBM  float64       `json:"signalDbm"`
	BitRateMbs float64       `json:"bitRateMbs"`
	GatewayRTT time.Duration `json:"gatewayRtt,omitempty"`
}
