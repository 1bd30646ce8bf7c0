package commands

import (
	"fmt"
	"strings"
)

type ICommand interface {
	Name() string
	Args() []string
	String() string
}

type command struct {
	name string
	args []string
}

func (c command) Name() string {
	return c.name
}

func (c command) Args() []string {
	return c.args
}

func (c command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

func NewCmd(name string, args ...string) ICommand {
	return command{
		name: name,
		args: args,
	}
}

// ip link helpers.

func NewLinkSetUpCmd(iface string) ICommand {
	return NewCmd("ip", "link", "set", iface, "up")
}

func NewLinkSetDownCmd(iface string) ICommand {
	return NewCmd("ip", "link", "set", iface, "down")
}

func NewAddrFlushCmd(iface string) ICommand {
	return NewCmd("ip", "addr", "flush", "dev", iface)
}

func NewAddrAddCmd(iface, cidr string) ICommand {
	return NewCmd("ip", "addr", "add", cidr, "dev", iface)
}

// iw helpers.

func NewIfaceInfoCmd(iface string) ICommand {
	return NewCmd("iw", "dev", iface, "info")
}

func NewPhyInfoCmd(phy string) ICommand {
	return NewCmd("iw", "phy", phy, "info")
}

func NewSetIfaceTypeCmd(iface, ifaceType string) ICommand {
	return NewCmd("iw", "dev", iface, "set", "type", ifaceType)
}

func NewAddVirtualAPCmd(iface, virtualName string) ICommand {
	return NewCmd("iw", "dev", iface, "interface", "add", virtualName, "type", "__ap")
}

func NewDelIfaceCmd(iface string) ICommand {
	return NewCmd("iw", "dev", iface, "del")
}

func NewScanCmd(iface string) ICommand {
	return NewCmd("iw", "dev", iface, "scan")
}

func NewStationDumpCmd(iface string) ICommand {
	return NewCmd("iw", "dev", iface, "station", "dump")
}

func NewLinkStatusCmd(iface string) ICommand {
	return NewCmd("iw", "dev", iface, "link")
}

// misc helpers.

func NewDriverInfoCmd(iface string) ICommand {
	return NewCmd("ethtool", "-i", iface)
}

func NewKillallCmd(process string) ICommand {
	return NewCmd("killall", process)
}

func NewSysctlSetCmd(key, value string) ICommand {
	return NewCmd("sysctl", "-w", fmt.Sprintf("%s=%s", key, value))
}

// bridge / iptables helpers.

func NewBridgeAddCmd(bridgeName string) ICommand {
	return NewCmd("ip", "link", "add", "name", bridgeName, "type", "bridge")
}

func NewBridgeDelCmd(bridgeName string) ICommand {
	return NewCmd("ip", "link", "delete", bridgeName, "type", "bridge")
}

func NewSetMasterCmd(iface, bridgeName string) ICommand {
	return NewCmd("ip", "link", "set", iface, "master", bridgeName)
}

func NewSetNoMasterCmd(iface string) ICommand {
	return NewCmd("ip", "link", "set", iface, "nomaster")
}

func NewIptablesCmd(args ...string) ICommand {
	return NewCmd("iptables", args...)
}
