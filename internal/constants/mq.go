package constants

const (
	// in requests.
	MQExtenderSetGoal        = "extender.set_goal"
	MQExtenderGetStatus      = "extender.get_status"
	MQExtenderManualRetry    = "extender.manual_retry"
	MQUpstreamScan           = "extender.upstream.scan"
	MQUpstreamConnect        = "extender.upstream.connect"
	MQUpstreamDisconnect     = "extender.upstream.disconnect"
	MQAccessPointSetProfile  = "extender.ap.set_profile"
	MQAccessPointListClients = "extender.ap.list_clients"
	MQDebugDumpHeap          = "extender.debug.dump_heap"
	MQDebugDumpGoroutines    = "extender.debug.dump_goroutines"
)
