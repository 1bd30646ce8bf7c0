package entities

type InterfaceMode string

const (
	InterfaceModeDown        InterfaceMode = "down"
	InterfaceModeStation     InterfaceMode = "station"
	InterfaceModeAccessPoint InterfaceMode = "access_point"
)

func (m InterfaceMode) String() string {
	return string(m)
}

// RadioIdentity describes a wireless interface as probed from the system.
// Immutable once probed; re-probed only after a hardware change event.
type RadioIdentity struct {
	InterfaceName  string   `json:"interfaceName"`
	PhyName        string   `json:"phyName"`
	MACAddress     string   `json:"macAddress"`
	Driver         string   `json:"driver"`
	SupportedModes []string `json:"supportedModes"`

	// SupportsConcurrent reports whether the radio can run a station and
	// an AP virtual sub-interface at the same time. Radios without it
	// require a full teardown/rebuild on every mode switch.
	SupportsConcurrent bool `json:"supportsConcurrent"`
}

func (r RadioIdentity) SupportsMode(mode string) bool {
	for _, m := range r.SupportedModes {
		if m == mode {
			return true
		}
	}

	return false
}

func (r RadioIdentity) SupportsStation() bool {
	return r.SupportsMode("managed")
}

func (r RadioIdentity) SupportsAccessPoint() bool {
	return r.SupportsMode("AP")
}
