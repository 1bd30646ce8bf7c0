package upstream

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

var scanHeaderKeys = table.Row{"#", "SSID", "BSSID", "CHANNEL", "SIGNAL", "SECURITY"}

// FormatScanResultsToTable renders discovered networks as a pretty table
// for the operator CLI.
func FormatScanResultsToTable(results []entities.ScanResult) string {
	t := table.NewWriter()
	t.AppendHeader(scanHeaderKeys)

	for i, result := range results {
		t.AppendRow(table.Row{
			i + 1,
			result.SSID,
			result.BSSID,
			result.Channel,
			fmt.Sprintf("%.0f dBm", result.SignalDBM),
			string(result.Security),
		})
	}

	return t.Render()
}
