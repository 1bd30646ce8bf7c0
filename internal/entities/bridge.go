package entities

type BridgeStateID string

const (
	BridgeTornDown    BridgeStateID = "torn_down"
	BridgeBuilding    BridgeStateID = "building"
	BridgeActive      BridgeStateID = "active"
	BridgeTearingDown BridgeStateID = "tearing_down"
)

func (s BridgeStateID) String() string {
	return string(s)
}

// BridgeStatus is the introspected state of the forwarding plane, exposed
// as part of the daemon status snapshot.
type BridgeStatus struct {
	State             BridgeStateID `json:"state"`
	BridgeName        string        `json:"bridgeName"`
	UpstreamInterface string        `json:"upstreamInterface,omitempty"`
	APInterface       string        `json:"apInterface,omitempty"`
	ForwardingEnabled bool          `json:"forwardingEnabled"`
	NATEnabled        bool          `json:"natEnabled"`
}
