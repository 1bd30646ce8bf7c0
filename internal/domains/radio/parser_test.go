package radio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const ifaceInfoSample = `Interface wlan0
	ifindex 3
	wdev 0x1
	addr aa:bb:cc:dd:ee:ff
	type managed
	wiphy 0
	channel 6 (2437 MHz), width: 20 MHz, center1: 2437 MHz
	txpower 20.00 dBm
`

func Test_parseIfaceInfo(t *testing.T) {
	info := parseIfaceInfo([]byte(ifaceInfoSample))

	require.Equal(t, "phy0", info.phyName)
	require.Equal(t, "aa:bb:cc:dd:ee:ff", info.macAddress)
	require.Equal(t, "managed", info.ifaceType)
}

func Test_parseIfaceInfo_Empty(t *testing.T) {
	info := parseIfaceInfo(nil)

	require.Empty(t, info.phyName)
	require.Empty(t, info.macAddress)
	require.Empty(t, info.ifaceType)
}

const phyInfoConcurrentSample = `Wiphy phy0
	max # scan SSIDs: 4
	Supported interface modes:
		 * IBSS
		 * managed
		 * AP
		 * AP/VLAN
		 * monitor
		 * P2P-client
	Band 1:
		Capabilities: 0x1862
	valid interface combinations:
		 * #{ managed } <= 1, #{ AP, P2P-client } <= 1, #{ P2P-device } <= 1,
		   total <= 3, #channels <= 2
	HT Capability overrides:
		 * MCS: ff ff ff ff ff ff ff ff ff ff
`

const phyInfoExclusiveSample = `Wiphy phy1
	Supported interface modes:
		 * managed
		 * AP
	valid interface combinations:
		 * #{ managed } <= 1,
		   total <= 1, #channels <= 1
	Supported commands:
		 * new_interface
`

func Test_parsePhyInfo(t *testing.T) {
	testTable := []struct {
		name               string
		output             string
		expectedModes      []string
		expectedConcurrent bool
	}{
		{
			name:               "concurrent managed plus AP",
			output:             phyInfoConcurrentSample,
			expectedModes:      []string{"IBSS", "managed", "AP", "AP/VLAN", "monitor", "P2P-client"},
			expectedConcurrent: true,
		},
		{
			name:               "single interface only",
			output:             phyInfoExclusiveSample,
			expectedModes:      []string{"managed", "AP"},
			expectedConcurrent: false,
		},
		{
			name:   "no output",
			output: "",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			caps := parsePhyInfo([]byte(testCase.output))

			require.Equal(t, testCase.expectedModes, caps.modes)
			require.Equal(t, testCase.expectedConcurrent, caps.supportsConcurrent)
		})
	}
}

func Test_parseDriverName(t *testing.T) {
	output := []byte(`driver: mt76x2u
version: 6.1.0
firmware-version: N/A
bus-info: 1-1.2:1.0
`)

	require.Equal(t, "mt76x2u", parseDriverName(output))
	require.Empty(t, parseDriverName(nil))
}
