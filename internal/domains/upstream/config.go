package upstream

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

// writeSupplicantConfig renders the wpa_supplicant configuration for the
// upstream profile. Credentials are written with restrictive permissions.
func writeSupplicantConfig(path string, profile entities.UpstreamProfile) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), constants.FilePerm); err != nil {
		return fmt.Errorf("writeSupplicantConfig: %w", err)
	}

	var b strings.Builder
	b.WriteString("ctrl_interface=/run/wpa_supplicant\n")
	b.WriteString("update_config=0\n")
	b.WriteString("network={\n")
	b.WriteString(fmt.Sprintf("    ssid=%q\n", profile.SSID))

	switch profile.Security {
	case entities.SecurityOpen:
		b.WriteString("    key_mgmt=NONE\n")
	default:
		b.WriteString("    key_mgmt=WPA-PSK\n")
		b.WriteString(fmt.Sprintf("    psk=%q\n", profile.PSK))
	}

	if profile.LastChannel > 0 {
		b.WriteString(fmt.Sprintf("    scan_freq=%d\n", channelToFreq(profile.LastChannel)))
	}

	b.WriteString("}\n")

	if err = os.WriteFile(path, []byte(b.String()), constants.ConfFilePerm); err != nil {
		return fmt.Errorf("writeSupplicantConfig: %w", err)
	}

	return nil
}

// channelToFreq maps a wifi channel number to its center frequency in MHz.
func channelToFreq(channel int) int {
	switch {
	case channel == 14:
		return 2484
	case channel <= 13:
		return 2407 + channel*5
	default:
		// 5 GHz band
		return 5000 + channel*5
	}
}
