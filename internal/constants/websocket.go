package constants

import (
	"time"
)

const (
	// in requests.
	MethodSetGoal      = "set_goal"
	MethodGetStatus    = "get_status"
	MethodManualRetry  = "manual_retry"
	MethodScanNetworks = "scan_networks"
	MethodConnect      = "connect_upstream"
	MethodSetAPProfile = "set_ap_profile"
	MethodFetchClients = "fetch_clients"

	// out notifications.
	MethodStatusEvent = "status_event"
)

const (
	WSPingPeriod = 4 * time.Second
	WSPongWait   = 6 * time.Second
	WSWriteWait  = 5 * time.Second
)
