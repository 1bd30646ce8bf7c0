package accesspoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

type recordedEvent struct {
	eventType entities.EventType
	record    entities.ClientRecord
}

func newRecordingTracker() (*ClientTracker, *[]recordedEvent) {
	events := &[]recordedEvent{}
	tracker := NewClientTracker(func(eventType entities.EventType, record entities.ClientRecord) {
		*events = append(*events, recordedEvent{eventType: eventType, record: record})
	})

	return tracker, events
}

func Test_ClientTracker_AssociateThenLease(t *testing.T) {
	tracker, events := newRecordingTracker()

	tracker.OnAssociate("AA:BB:CC:DD:EE:FF")

	clients := tracker.Snapshot()
	require.Len(t, clients, 1)
	require.Equal(t, "aa:bb:cc:dd:ee:ff", clients[0].MAC)
	require.Equal(t, entities.ClientIPUnknown, clients[0].IP)

	// the lease updates the associated record instead of creating a second one
	tracker.OnLease("aa:bb:cc:dd:ee:ff", "192.168.4.5", "phone")

	clients = tracker.Snapshot()
	require.Len(t, clients, 1)
	require.Equal(t, "192.168.4.5", clients[0].IP)
	require.Equal(t, "phone", clients[0].Hostname)

	require.Len(t, *events, 2)
	require.Equal(t, entities.EventClientJoined, (*events)[0].eventType)
	require.Equal(t, entities.EventClientLease, (*events)[1].eventType)
}

func Test_ClientTracker_ReassociateNoDuplicateEvent(t *testing.T) {
	tracker, events := newRecordingTracker()

	tracker.OnAssociate("aa:bb:cc:dd:ee:ff")
	tracker.OnAssociate("aa:bb:cc:dd:ee:ff")

	require.Len(t, tracker.Snapshot(), 1)
	require.Len(t, *events, 1, "re-association of a known client must not emit a second join")
}

func Test_ClientTracker_LeaseWithoutAssociation(t *testing.T) {
	tracker, _ := newRecordingTracker()

	tracker.OnLease("aa:bb:cc:dd:ee:01", "192.168.4.7", "*")

	clients := tracker.Snapshot()
	require.Len(t, clients, 1)
	require.Equal(t, "192.168.4.7", clients[0].IP)
	require.Empty(t, clients[0].Hostname, "dnsmasq's placeholder hostname must be dropped")
}

func Test_ClientTracker_Disassociate(t *testing.T) {
	tracker, events := newRecordingTracker()

	// leaving a client we never saw is ignored
	tracker.OnDisassociate("aa:bb:cc:dd:ee:02")
	require.Empty(t, *events)

	tracker.OnAssociate("aa:bb:cc:dd:ee:02")
	tracker.OnDisassociate("AA:BB:CC:DD:EE:02")

	require.Empty(t, tracker.Snapshot())
	require.Equal(t, entities.EventClientLeft, (*events)[1].eventType)
}

func Test_ClientTracker_LeaseExpiry(t *testing.T) {
	tracker, _ := newRecordingTracker()

	tracker.OnAssociate("aa:bb:cc:dd:ee:03")
	tracker.OnLease("aa:bb:cc:dd:ee:03", "192.168.4.9", "laptop")
	tracker.OnLeaseExpiry("aa:bb:cc:dd:ee:03")

	clients := tracker.Snapshot()
	require.Len(t, clients, 1, "expiry keeps the record while the station stays associated")
	require.Equal(t, entities.ClientIPUnknown, clients[0].IP)
}

func Test_ClientTracker_Leaseless(t *testing.T) {
	tracker, _ := newRecordingTracker()

	tracker.OnAssociate("aa:bb:cc:dd:ee:04")

	// the wait window has not elapsed yet
	require.Empty(t, tracker.Leaseless(time.Hour))

	leaseless := tracker.Leaseless(0)
	require.Len(t, leaseless, 1)
	require.Equal(t, "aa:bb:cc:dd:ee:04", leaseless[0].MAC)

	// a granted lease clears the client from the report
	tracker.OnLease("aa:bb:cc:dd:ee:04", "192.168.4.11", "tablet")
	require.Empty(t, tracker.Leaseless(0))

	// expiry restarts the wait
	tracker.OnLeaseExpiry("aa:bb:cc:dd:ee:04")
	require.Empty(t, tracker.Leaseless(time.Hour))
	require.Len(t, tracker.Leaseless(0), 1)

	tracker.OnDisassociate("aa:bb:cc:dd:ee:04")
	require.Empty(t, tracker.Leaseless(0))
}

func Test_lastMAC(t *testing.T) {
	mac, ok := lastMAC("wlan0_ap0: AP-STA-CONNECTED aa:bb:cc:dd:ee:ff")
	require.True(t, ok)
	require.Equal(t, "aa:bb:cc:dd:ee:ff", mac)

	_, ok = lastMAC("wlan0_ap0: AP-ENABLED")
	require.False(t, ok)
}

func Test_parseDHCPAck(t *testing.T) {
	testTable := []struct {
		name     string
		line     string
		expected dhcpLease
		ok       bool
	}{
		{
			name: "full ack with hostname",
			line: "dnsmasq-dhcp[12]: DHCPACK(wlan0_ap0) 192.168.4.5 AA:BB:CC:DD:EE:FF phone",
			expected: dhcpLease{
				MAC:      "aa:bb:cc:dd:ee:ff",
				IP:       "192.168.4.5",
				Hostname: "phone",
			},
			ok: true,
		},
		{
			name: "ack without hostname",
			line: "dnsmasq-dhcp[12]: DHCPACK(wlan0_ap0) 192.168.4.6 aa:bb:cc:dd:ee:01",
			expected: dhcpLease{
				MAC: "aa:bb:cc:dd:ee:01",
				IP:  "192.168.4.6",
			},
			ok: true,
		},
		{
			name: "discover line is not a lease",
			line: "dnsmasq-dhcp[12]: DHCPDISCOVER(wlan0_ap0) aa:bb:cc:dd:ee:01",
		},
		{
			name: "truncated ack",
			line: "dnsmasq-dhcp[12]: DHCPACK(wlan0_ap0) 192.168.4.6",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			lease, ok := parseDHCPAck(testCase.line)

			require.Equal(t, testCase.ok, ok)
			if testCase.ok {
				require.Equal(t, testCase.expected, lease)
			}
		})
	}
}

func Test_parseStationSignals(t *testing.T) {
	output := []byte(`Station aa:bb:cc:dd:ee:ff (on wlan0_ap0)
	inactive time:	10 ms
	signal:		-44 [-48, -45] dBm
	tx bitrate:	144.4 MBit/s
Station aa:bb:cc:dd:ee:01 (on wlan0_ap0)
	inactive time:	250 ms
	signal:		-67 dBm
`)

	signals := parseStationSignals(output)
	require.Len(t, signals, 2)
	require.Equal(t, float64(-44), signals["aa:bb:cc:dd:ee:ff"])
	require.Equal(t, float64(-67), signals["aa:bb:cc:dd:ee:01"])
}
