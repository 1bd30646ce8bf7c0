package upstream

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

const gatewayPingTimeout = 3 * time.Second

type (
	IConnectivityService interface {
		CheckReachable() (reachable bool, err error)
	}
)

// Monitor samples link quality on a fixed interval. Sampling is purely
// observational: it never triggers reconnection by itself, only
// disconnect events from the supplicant stream do.
type Monitor struct {
	shellService        IShellService
	connectionService   *Service
	connectivityService IConnectivityService
	statusService       IStatusService

	interfaceName string
}

func NewMonitor(shellService IShellService, connectionService *Service,
	connectivityService IConnectivityService, statusService IStatusService, interfaceName string) *Monitor {
	return &Monitor{
		shellService:        shellService,
		connectionService:   connectionService,
		connectivityService: connectivityService,
		statusService:       statusService,
		interfaceName:       interfaceName,
	}
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(constants.SignalSampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.connectionService.CurrentState().IsConnected() {
				continue
			}

			quality, err := m.sample(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("Start: link quality sample failed")
				continue
			}

			event := entities.NewStatusEvent(entities.EventLinkQuality)
			event.Quality = &quality
			m.statusService.Publish(event)
		}
	}
}

func (m *Monitor) sample(ctx context.Context) (quality entities.LinkQuality, err error) {
	output, err := m.shellService.ExecOutputContext(ctx, commands.NewLinkStatusCmd(m.interfaceName))
	if err != nil {
		return quality, err
	}

	quality = parseLinkStatus(output)

	if rtt, pingErr := m.pingGateway(ctx); pingErr == nil {
		quality.GatewayRTT = rtt
	}

	if m.connectivityService != nil {
		if reachable, checkErr := m.connectivityService.CheckReachable(); checkErr == nil && !reachable {
			log.Debug().Msg("sample: upstream link up but internet unreachable")
		}
	}

	return quality, nil
}

func (m *Monitor) pingGateway(ctx context.Context) (rtt time.Duration, err error) {
	gateway, err := m.defaultGateway(ctx)
	if err != nil {
		return rtt, err
	}

	pinger, err := probing.NewPinger(gateway)
	if err != nil {
		return rtt, err
	}

	pinger.Count = 1
	pinger.Timeout = gatewayPingTimeout
	pinger.SetPrivileged(true)

	if err = pinger.RunWithContext(ctx); err != nil {
		return rtt, err
	}

	stats := pinger.Statistics()
	return stats.AvgRtt, nil
}

func (m *Monitor) defaultGateway(ctx context.Context) (gateway string, err error) {
	output, err := m.shellService.ExecOutputContext(ctx,
		commands.NewCmd("ip", "route", "show", "default", "dev", m.interfaceName))
	if err != nil {
		return gateway, err
	}

	fields := strings.Fields(string(output))
	for i, field := range fields {
		if field == "via" && i+1 < len(fields) {
			return fields[i+1], nil
		}
	}

	return gateway, nil
}

// parseLinkStatus extracts signal and bit rate from `iw dev <iface> link`.
func parseLinkStatus(output []byte) (quality entities.LinkQuality) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if value, found := strings.CutPrefix(line, "signal:"); found {
			value = strings.TrimSuffix(strings.TrimSpace(value), " dBm")
			if signal, parseErr := strconv.ParseFloat(value, 64); parseErr == nil {
				quality.SignalDBM = signal
			}
		}

		if value, found := strings.CutPrefix(line, "tx bitrate:"); found {
			fields := strings.Fields(value)
			if len(fields) > 0 && lo.IsNotEmpty(fields[0]) {
				if rate, parseErr := strconv.ParseFloat(fields[0], 64); parseErr == nil {
					quality.BitRateMbs = rate
				}
			}
		}
	}

	return quality
}
