package upstream

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

// parseScanOutput turns `iw dev <iface> scan` output into scan results.
// One BSS block per discovered network; hidden SSIDs are skipped.
func parseScanOutput(output []byte) (results []entities.ScanResult) {
	var current *entities.ScanResult

	flush := func() {
		if current != nil && lo.IsNotEmpty(current.SSID) {
			results = append(results, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "BSS "):
			flush()

			bssid := strings.TrimPrefix(line, "BSS ")
			if idx := strings.IndexAny(bssid, "( "); idx > 0 {
				bssid = bssid[:idx]
			}

			current = &entities.ScanResult{
				BSSID:    bssid,
				Security: entities.SecurityOpen,
			}

		case current == nil:
			continue

		case strings.HasPrefix(line, "SSID:"):
			current.SSID = strings.TrimSpace(strings.TrimPrefix(line, "SSID:"))

		case strings.HasPrefix(line, "signal:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "signal:"))
			value = strings.TrimSuffix(value, " dBm")
			if signal, err := strconv.ParseFloat(value, 64); err == nil {
				current.SignalDBM = signal
			}

		case strings.HasPrefix(line, "DS Parameter set: channel"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "DS Parameter set: channel"))
			if channel, err := strconv.Atoi(value); err == nil {
				current.Channel = channel
			}

		case strings.HasPrefix(line, "RSN:"):
			current.Security = entities.SecurityWPA2PSK

		case strings.HasPrefix(line, "WPA:") && current.Security == entities.SecurityOpen:
			current.Security = entities.SecurityWPAPSK
		}
	}

	flush()
	return results
}
