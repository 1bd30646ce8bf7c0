package main

import (
	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/infrastructure"
	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/websocket"
)

func getWebsocketRoutes(injector infrastructure.IInjector) map[string]websocket.WsHandler {
	orchestratorHandler := injector.InjectOrchestratorHandler()
	upstreamHandler := injector.InjectUpstreamHandler()
	accessPointHandler := injector.InjectAccessPointHandler()

	return map[string]websocket.WsHandler{
		constants.MethodSetGoal:      orchestratorHandler.SetGoal,
		constants.MethodGetStatus:    orchestratorHandler.GetStatus,
		constants.MethodManualRetry:  orchestratorHandler.ManualRetry,
		constants.MethodScanNetworks: upstreamHandler.ScanNetworks,
		constants.MethodConnect:      upstreamHandler.Connect,
		constants.MethodSetAPProfile: accessPointHandler.SetProfile,
		constants.MethodFetchClients: accessPointHandler.FetchClients,
	}
}

func getMQRoutes(injector infrastructure.IInjector) map[string]func(m *nats.Msg) (resp any) {
	orchestratorMQHandler := injector.InjectOrchestratorMQHandler()
	upstreamMQHandler := injector.InjectUpstreamMQHandler()
	accessPointMQHandler := injector.InjectAccessPointMQHandler()
	debugMQHandler := injector.InjectDebugMQHandler()

	return map[string]func(m *nats.Msg) (resp any){
		constants.MQExtenderSetGoal:        orchestratorMQHandler.SetGoal,
		constants.MQExtenderGetStatus:      orchestratorMQHandler.GetStatus,
		constants.MQExtenderManualRetry:    orchestratorMQHandler.ManualRetry,
		constants.MQUpstreamScan:           upstreamMQHandler.Scan,
		constants.MQUpstreamConnect:        upstreamMQHandler.Connect,
		constants.MQUpstreamDisconnect:     upstreamMQHandler.Disconnect,
		constants.MQAccessPointSetProfile:  accessPointMQHandler.SetProfile,
		constants.MQAccessPointListClients: accessPointMQHandler.ListClients,
		constants.MQDebugDumpHeap:          debugMQHandler.DumpHeap,
		constants.MQDebugDumpGoroutines:    debugMQHandler.DumpGoroutines,
	}
}
