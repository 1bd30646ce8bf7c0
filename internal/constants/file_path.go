package constants

const (
	DefaultLogfilePath = "/var/log/wifi-extender/agent.log"
	ProfileConfigPath  = "/etc/wifi-extender/config.yaml"
	AgentStatePath     = "/etc/wifi-extender/agent-state"
)

const (
	RunDirectory          = "/run/wifi-extender"
	WPASupplicantConfPath = "/run/wifi-extender/wpa_supplicant.conf"
	HostapdConfPath       = "/run/wifi-extender/hostapd.conf"
	DnsmasqConfPath       = "/run/wifi-extender/dnsmasq.conf"
	DnsmasqLeasePath      = "/run/wifi-extender/dnsmasq.leases"
)

const (
	IPForwardPath = "/proc/sys/net/ipv4/ip_forward"
	SysClassNet   = "/sys/class/net"
)
