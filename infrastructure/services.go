package infrastructure

import (
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/accesspoint"
	"github.com/lanreach/wifi-extender-agent/internal/domains/bridge"
	"github.com/lanreach/wifi-extender-agent/internal/domains/ifmode"
	"github.com/lanreach/wifi-extender-agent/internal/domains/orchestrator"
	"github.com/lanreach/wifi-extender-agent/internal/domains/proc"
	"github.com/lanreach/wifi-extender-agent/internal/domains/profile"
	"github.com/lanreach/wifi-extender-agent/internal/domains/radio"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell"
	"github.com/lanreach/wifi-extender-agent/internal/domains/status"
	"github.com/lanreach/wifi-extender-agent/internal/domains/upstream"
	"github.com/lanreach/wifi-extender-agent/internal/domains/upstream/httpcheck"
	ws "github.com/lanreach/wifi-extender-agent/internal/domains/websocket"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

var (
	shellService     *shell.Service
	shellServiceOnce sync.Once
)

func (k *Kernel) InjectShellService() *shell.Service {
	shellServiceOnce.Do(func() {
		shellService = shell.NewService()
	})

	return shellService
}

var (
	processRunner     *proc.Runner
	processRunnerOnce sync.Once
)

func (k *Kernel) InjectProcessRunner() *proc.Runner {
	processRunnerOnce.Do(func() {
		processRunner = proc.NewRunner()
	})

	return processRunner
}

var (
	statusService     *status.Service
	statusServiceOnce sync.Once
)

func (k *Kernel) InjectStatusService() *status.Service {
	statusServiceOnce.Do(func() {
		statusService = status.NewService()
	})

	return statusService
}

var (
	radioService     *radio.Service
	radioServiceOnce sync.Once
)

func (k *Kernel) InjectRadioService() *radio.Service {
	radioServiceOnce.Do(func() {
		radioService = radio.NewService(
			k.InjectShellService(),
		)
	})

	return radioService
}

var (
	modeService     *ifmode.Service
	modeServiceOnce sync.Once
)

func (k *Kernel) InjectModeService() *ifmode.Service {
	modeServiceOnce.Do(func() {
		modeService = ifmode.NewService(
			k.InjectShellService(),
			k.InjectRadioService(),
			k.Identity,
		)
	})

	return modeService
}

var (
	upstreamService     *upstream.Service
	upstreamServiceOnce sync.Once
)

func (k *Kernel) InjectUpstreamService() *upstream.Service {
	upstreamServiceOnce.Do(func() {
		upstreamService = upstream.NewService(
			k.InjectShellService(),
			upstreamRunner{runner: k.InjectProcessRunner()},
			k.InjectStatusService(),
			k.env.Interface,
			upstream.ReconnectPolicy{
				BaseDelay:   constants.ReconnectBaseDelay,
				MaxDelay:    constants.ReconnectMaxDelay,
				MaxAttempts: constants.ReconnectMaxAttempts,
			},
		)
	})

	return upstreamService
}

var (
	connectivityService     *httpcheck.Service
	connectivityServiceOnce sync.Once
)

func (k *Kernel) InjectConnectivityService() *httpcheck.Service {
	connectivityServiceOnce.Do(func() {
		connectivityService = httpcheck.NewService()
	})

	return connectivityService
}

var (
	upstreamMonitor     *upstream.Monitor
	upstreamMonitorOnce sync.Once
)

func (k *Kernel) InjectUpstreamMonitor() *upstream.Monitor {
	upstreamMonitorOnce.Do(func() {
		upstreamMonitor = upstream.NewMonitor(
			k.InjectShellService(),
			k.InjectUpstreamService(),
			k.InjectConnectivityService(),
			k.InjectStatusService(),
			k.env.Interface,
		)
	})

	return upstreamMonitor
}

var (
	accessPointService     *accesspoint.Service
	accessPointServiceOnce sync.Once
)

func (k *Kernel) InjectAccessPointService() *accesspoint.Service {
	accessPointServiceOnce.Do(func() {
		accessPointService = accesspoint.NewService(
			k.InjectShellService(),
			accessPointRunner{runner: k.InjectProcessRunner()},
			k.InjectStatusService(),
			ifmode.APInterfaceName(k.env.Interface),
		)
	})

	return accessPointService
}

var (
	bridgeService     *bridge.Service
	bridgeServiceOnce sync.Once
)

func (k *Kernel) InjectBridgeService() *bridge.Service {
	bridgeServiceOnce.Do(func() {
		bridgeService = bridge.NewService(
			k.InjectShellService(),
			k.InjectStatusService(),
		)
	})

	return bridgeService
}

var (
	profileService     *profile.Service
	profileServiceOnce sync.Once
)

func (k *Kernel) InjectProfileService() *profile.Service {
	profileServiceOnce.Do(func() {
		profileService = profile.NewService(
			k.DB,
		)
	})

	return profileService
}

var (
	orchestratorService     *orchestrator.Service
	orchestratorServiceOnce sync.Once
)

func (k *Kernel) InjectOrchestratorService() *orchestrator.Service {
	orchestratorServiceOnce.Do(func() {
		orchestratorService = orchestrator.NewService(
			k.InjectRadioService(),
			k.InjectModeService(),
			k.InjectUpstreamService(),
			k.InjectAccessPointService(),
			k.InjectBridgeService(),
			k.InjectProfileService(),
			k.InjectStatusService(),
			k.Identity,
		)
	})

	return orchestratorService
}

var (
	websocketService     *ws.Service
	websocketServiceOnce sync.Once
)

func (k *Kernel) InjectWebsocketService() *ws.Service {
	websocketServiceOnce.Do(func() {
		websocketService = ws.NewService(
			k.InjectStatusService(),
			k.env.WSListen,
		)
	})

	return websocketService
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		url := k.env.NATSAddr
		if url == "" {
			url = nats.DefaultURL
		}

		mqService = mq.NewService(url)
	})

	return mqService
}
