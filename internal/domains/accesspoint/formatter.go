package accesspoint

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

var clientHeaderKeys = table.Row{"#", "MAC", "IP", "HOSTNAME", "SIGNAL", "LAST SEEN"}

// FormatClientsToTable renders the client set as a pretty table for the
// operator CLI.
func FormatClientsToTable(clients []entities.ClientRecord) string {
	t := table.NewWriter()
	t.AppendHeader(clientHeaderKeys)

	for i, client := range clients {
		ip := client.IP
		if !client.HasLease() {
			ip = "unknown"
		}

		signal := "-"
		if client.SignalDBM != 0 {
			signal = fmt.Sprintf("%.0f dBm", client.SignalDBM)
		}

		hostname := client.Hostname
		if lo.IsEmpty(hostname) {
			hostname = "-"
		}

		t.AppendRow(table.Row{
			i + 1,
			client.MAC,
			ip,
			hostname,
			signal,
			client.LastSeen.Format("15:04:05"),
		})
	}

	return t.Render()
}
