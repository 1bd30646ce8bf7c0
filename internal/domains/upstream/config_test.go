package upstream

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

func Test_Backoff(t *testing.T) {
	policy := ReconnectPolicy{
		BaseDelay:   2 * time.Second,
		MaxDelay:    60 * time.Second,
		MaxAttempts: 8,
	}

	testTable := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: -3, expected: 2 * time.Second},
		{attempt: 0, expected: 2 * time.Second},
		{attempt: 1, expected: 2 * time.Second},
		{attempt: 2, expected: 4 * time.Second},
		{attempt: 3, expected: 8 * time.Second},
		{attempt: 5, expected: 32 * time.Second},
		{attempt: 6, expected: 60 * time.Second},
		{attempt: 100, expected: 60 * time.Second},
	}

	for _, testCase := range testTable {
		require.Equal(t, testCase.expected, policy.Backoff(testCase.attempt),
			"attempt %d", testCase.attempt)
	}
}

func Test_channelToFreq(t *testing.T) {
	require.Equal(t, 2412, channelToFreq(1))
	require.Equal(t, 2437, channelToFreq(6))
	require.Equal(t, 2472, channelToFreq(13))
	require.Equal(t, 2484, channelToFreq(14))
	require.Equal(t, 5180, channelToFreq(36))
	require.Equal(t, 5745, channelToFreq(149))
}

func Test_writeSupplicantConfig(t *testing.T) {
	testTable := []struct {
		name        string
		profile     entities.UpstreamProfile
		contains    []string
		notContains []string
	}{
		{
			name: "wpa2 network with scan hint",
			profile: entities.UpstreamProfile{
				SSID:        "HomeNet",
				Security:    entities.SecurityWPA2PSK,
				PSK:         "hunter2hunter2",
				LastChannel: 6,
			},
			contains: []string{
				`ssid="HomeNet"`,
				"key_mgmt=WPA-PSK",
				`psk="hunter2hunter2"`,
				"scan_freq=2437",
			},
		},
		{
			name: "open network",
			profile: entities.UpstreamProfile{
				SSID:     "OpenGuest",
				Security: entities.SecurityOpen,
			},
			contains:    []string{`ssid="OpenGuest"`, "key_mgmt=NONE"},
			notContains: []string{"psk=", "scan_freq="},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wpa_supplicant.conf")

			require.NoError(t, writeSupplicantConfig(path, testCase.profile))

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			for _, fragment := range testCase.contains {
				require.Contains(t, string(data), fragment)
			}
			for _, fragment := range testCase.notContains {
				require.NotContains(t, string(data), fragment)
			}
		})
	}
}
