package constants

import (
	"time"
)

const (
	BridgeName         = "wlx-br0"
	APInterfaceSuffix  = "ap0"
	DefaultAPChannel   = 6
	DefaultAPHWMode    = "g"
	DefaultLeaseTime   = "12h"
	DefaultDHCPRangeLo = "192.168.4.2"
	DefaultDHCPRangeHi = "192.168.4.20"
	DefaultAPAddress   = "192.168.4.1/24"
)

const (
	FilePerm     = 0755
	LogFilePerm  = 0644
	ConfFilePerm = 0600
)

const (
	// reconnection policy.
	ReconnectBaseDelay   = 2 * time.Second
	ReconnectMaxDelay    = 60 * time.Second
	ReconnectMaxAttempts = 8

	// bounded waits for external processes.
	ModeVerifyTimeout   = 10 * time.Second
	HostapdReadyTimeout = 15 * time.Second
	DnsmasqReadyTimeout = 15 * time.Second
	DHCPClientTimeout   = 30 * time.Second
	LeaseWaitTimeout    = 30 * time.Second
	ScanTimeout         = 20 * time.Second

	// observational sampling.
	SignalSampleInterval = 15 * time.Second
	ReconcileTick        = 10 * time.Second
)

const (
	ModeTransitionRetryLimit  = 3
	APStartRetryLimit         = 3
	UpstreamConnectRetryLimit = 8
)
