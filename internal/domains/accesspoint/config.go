package accesspoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

// writeHostapdConfig renders the hostapd configuration derived from the
// AP profile.
func writeHostapdConfig(path, interfaceName string, profile entities.APProfile) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), constants.FilePerm); err != nil {
		return fmt.Errorf("writeHostapdConfig: %w", err)
	}

	channel := profile.Channel
	if channel == 0 {
		channel = constants.DefaultAPChannel
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("interface=%s\n", interfaceName))
	b.WriteString("driver=nl80211\n")
	b.WriteString(fmt.Sprintf("ssid=%s\n", profile.SSID))
	b.WriteString(fmt.Sprintf("hw_mode=%s\n", constants.DefaultAPHWMode))
	b.WriteString(fmt.Sprintf("channel=%d\n", channel))
	b.WriteString("ctrl_interface=/var/run/hostapd\n")
	b.WriteString("ignore_broadcast_ssid=0\n")

	if profile.Security != entities.SecurityOpen {
		b.WriteString("wpa=2\n")
		b.WriteString("wpa_key_mgmt=WPA-PSK\n")
		b.WriteString("rsn_pairwise=CCMP\n")
		b.WriteString(fmt.Sprintf("wpa_passphrase=%s\n", profile.PSK))
	}

	if err = os.WriteFile(path, []byte(b.String()), constants.ConfFilePerm); err != nil {
		return fmt.Errorf("writeHostapdConfig: %w", err)
	}

	return nil
}

// writeDnsmasqConfig renders the dnsmasq configuration bound to the AP
// interface and its client subnet.
func writeDnsmasqConfig(path, interfaceName string, profile entities.APProfile) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), constants.FilePerm); err != nil {
		return fmt.Errorf("writeDnsmasqConfig: %w", err)
	}

	leaseTTL := profile.DHCPLeaseTTL
	if leaseTTL == "" {
		leaseTTL = constants.DefaultLeaseTime
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("interface=%s\n", interfaceName))
	b.WriteString("bind-interfaces\n")
	b.WriteString("domain-needed\n")
	b.WriteString("bogus-priv\n")
	b.WriteString(fmt.Sprintf("dhcp-range=%s,%s,%s\n", profile.DHCPRangeLo, profile.DHCPRangeHi, leaseTTL))
	b.WriteString(fmt.Sprintf("dhcp-leasefile=%s\n", constants.DnsmasqLeasePath))
	b.WriteString("log-dhcp\n")

	if err = os.WriteFile(path, []byte(b.String()), constants.ConfFilePerm); err != nil {
		return fmt.Errorf("writeDnsmasqConfig: %w", err)
	}

	return nil
}
