package upstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

const scanOutputSample = `BSS aa:bb:cc:dd:ee:01(on wlan0) -- associated
	TSF: 2124980212970 usec (24d, 14:16:20)
	freq: 2437
	signal: -48.00 dBm
	SSID: HomeNet
	DS Parameter set: channel 6
	RSN:	 * Version: 1
		 * Group cipher: CCMP
BSS aa:bb:cc:dd:ee:02(on wlan0)
	freq: 2412
	signal: -71.00 dBm
	SSID: CoffeeShop
	DS Parameter set: channel 1
	WPA:	 * Version: 1
BSS aa:bb:cc:dd:ee:03(on wlan0)
	freq: 2462
	signal: -80.00 dBm
	SSID:
	DS Parameter set: channel 11
BSS aa:bb:cc:dd:ee:04(on wlan0)
	freq: 5180
	signal: -55.00 dBm
	SSID: OpenGuest
	DS Parameter set: channel 36
`

func Test_parseScanOutput(t *testing.T) {
	results := parseScanOutput([]byte(scanOutputSample))

	require.Len(t, results, 3, "hidden SSID must be skipped")

	require.Equal(t, entities.ScanResult{
		SSID:      "HomeNet",
		BSSID:     "aa:bb:cc:dd:ee:01",
		Channel:   6,
		SignalDBM: -48,
		Security:  entities.SecurityWPA2PSK,
	}, results[0])

	require.Equal(t, entities.ScanResult{
		SSID:      "CoffeeShop",
		BSSID:     "aa:bb:cc:dd:ee:02",
		Channel:   1,
		SignalDBM: -71,
		Security:  entities.SecurityWPAPSK,
	}, results[1])

	require.Equal(t, entities.ScanResult{
		SSID:      "OpenGuest",
		BSSID:     "aa:bb:cc:dd:ee:04",
		Channel:   36,
		SignalDBM: -55,
		Security:  entities.SecurityOpen,
	}, results[2])
}

func Test_parseScanOutput_Empty(t *testing.T) {
	require.Empty(t, parseScanOutput(nil))
	require.Empty(t, parseScanOutput([]byte("command failed: Network is down (-100)")))
}

func Test_parseLinkStatus(t *testing.T) {
	output := []byte(`Connected to aa:bb:cc:dd:ee:01 (on wlan0)
	SSID: HomeNet
	freq: 2437
	signal: -52 dBm
	rx bitrate: 144.4 MBit/s
	tx bitrate: 130.0 MBit/s MCS 15
`)

	quality := parseLinkStatus(output)
	require.Equal(t, float64(-52), quality.SignalDBM)
	require.Equal(t, 130.0, quality.BitRateMbs)
}

func Test_parseLinkStatus_NotConnected(t *testing.T) {
	quality := parseLinkStatus([]byte("Not connected.\n"))
	require.Zero(t, quality.SignalDBM)
	require.Zero(t, quality.BitRateMbs)
}
