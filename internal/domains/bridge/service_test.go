package bridge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/domains/bridge/bridge_mocks"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

type serviceFields struct {
	shellService  *bridge_mocks.MockIShellService
	statusService *bridge_mocks.MockIStatusService
}

func newServiceFields(t *testing.T) *serviceFields {
	f := &serviceFields{
		shellService:  bridge_mocks.NewMockIShellService(t),
		statusService: bridge_mocks.NewMockIStatusService(t),
	}

	// state changes publish asynchronously; the test may finish first
	f.statusService.EXPECT().Publish(mock.Anything).Return().Maybe()

	return f
}

// newTestService redirects the ip_forward flag to a scratch file so
// Status introspection can run without touching procfs.
func newTestService(t *testing.T, f *serviceFields) (*Service, string) {
	forwardPath := filepath.Join(t.TempDir(), "ip_forward")
	require.NoError(t, os.WriteFile(forwardPath, []byte("0"), 0o644))

	service := NewService(f.shellService, f.statusService)
	service.ipForwardPath = forwardPath

	return service, forwardPath
}

func expectApplySuccess(f *serviceFields) {
	f.shellService.EXPECT().
		Exec(commands.NewBridgeAddCmd("wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSetMasterCmd("wlan0_ap0", "wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewLinkSetUpCmd("wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSysctlSetCmd("net.ipv4.ip_forward", "1")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-t", "nat", "-A", "POSTROUTING", "-o", "wlan0", "-j", "MASQUERADE")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-A", "FORWARD", "-i", "wlan0_ap0", "-o", "wlan0", "-j", "ACCEPT")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-A", "FORWARD", "-i", "wlan0", "-o", "wlan0_ap0",
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(nil).
		Times(1)
}

func expectUnwindSuccess(f *serviceFields) {
	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-t", "nat", "-D", "POSTROUTING", "-o", "wlan0", "-j", "MASQUERADE")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-D", "FORWARD", "-i", "wlan0_ap0", "-o", "wlan0", "-j", "ACCEPT")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-D", "FORWARD", "-i", "wlan0", "-o", "wlan0_ap0",
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSysctlSetCmd("net.ipv4.ip_forward", "0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewLinkSetDownCmd("wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSetNoMasterCmd("wlan0_ap0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewBridgeDelCmd("wlx-br0")).
		Return(nil).
		Times(1)
}

func Test_Activate(t *testing.T) {
	f := newServiceFields(t)
	expectApplySuccess(f)

	service, _ := newTestService(t, f)

	require.NoError(t, service.Activate("wlan0", "wlan0_ap0"))
	require.Equal(t, entities.BridgeActive, service.CurrentState())

	// same pair again is a no-op
	require.NoError(t, service.Activate("wlan0", "wlan0_ap0"))

	// a different pair while active is rejected
	require.ErrorIs(t, service.Activate("eth0", "wlan0_ap0"), errs.ErrBridgeActivationFailed)
}

func Test_Activate_PartialFailureUnwinds(t *testing.T) {
	f := newServiceFields(t)

	f.shellService.EXPECT().
		Exec(commands.NewBridgeAddCmd("wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSetMasterCmd("wlan0_ap0", "wlx-br0")).
		Return(errors.New("device busy")).
		Times(1)

	// only the bridge device was applied, so only its reversal runs
	f.shellService.EXPECT().
		Exec(commands.NewBridgeDelCmd("wlx-br0")).
		Return(nil).
		Times(1)

	service, _ := newTestService(t, f)

	require.ErrorIs(t, service.Activate("wlan0", "wlan0_ap0"), errs.ErrBridgeActivationFailed)
	require.Equal(t, entities.BridgeTornDown, service.CurrentState())
}

func Test_Deactivate(t *testing.T) {
	f := newServiceFields(t)
	expectApplySuccess(f)
	expectUnwindSuccess(f)

	service, _ := newTestService(t, f)

	// torn down bridge deactivates as a no-op
	require.NoError(t, service.Deactivate())

	require.NoError(t, service.Activate("wlan0", "wlan0_ap0"))
	require.NoError(t, service.Deactivate())
	require.Equal(t, entities.BridgeTornDown, service.CurrentState())
}

func Test_Deactivate_ToleratesMissingResources(t *testing.T) {
	f := newServiceFields(t)
	expectApplySuccess(f)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-t", "nat", "-D", "POSTROUTING", "-o", "wlan0", "-j", "MASQUERADE")).
		Return(errors.New("no such rule")).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-D", "FORWARD", "-i", "wlan0_ap0", "-o", "wlan0", "-j", "ACCEPT")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewIptablesCmd("-D", "FORWARD", "-i", "wlan0", "-o", "wlan0_ap0",
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSysctlSetCmd("net.ipv4.ip_forward", "0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewLinkSetDownCmd("wlx-br0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewSetNoMasterCmd("wlan0_ap0")).
		Return(errors.New("not enslaved")).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewBridgeDelCmd("wlx-br0")).
		Return(nil).
		Times(1)

	service, _ := newTestService(t, f)

	require.NoError(t, service.Activate("wlan0", "wlan0_ap0"))
	require.NoError(t, service.Deactivate())
	require.Equal(t, entities.BridgeTornDown, service.CurrentState())
}

func Test_Status(t *testing.T) {
	f := newServiceFields(t)
	expectApplySuccess(f)

	f.shellService.EXPECT().
		ExecOutput(commands.NewIptablesCmd("-t", "nat", "-L", "POSTROUTING", "-n", "-v")).
		Return([]byte("MASQUERADE  all  --  *  wlan0  0.0.0.0/0  0.0.0.0/0"), nil).
		Times(1)

	service, forwardPath := newTestService(t, f)

	require.NoError(t, service.Activate("wlan0", "wlan0_ap0"))

	// the sysctl ran against the mock, so flip the scratch flag the way
	// the kernel would have
	require.NoError(t, os.WriteFile(forwardPath, []byte("1\n"), 0o644))

	status := service.Status()
	require.Equal(t, entities.BridgeActive, status.State)
	require.Equal(t, "wlx-br0", status.BridgeName)
	require.Equal(t, "wlan0", status.UpstreamInterface)
	require.Equal(t, "wlan0_ap0", status.APInterface)
	require.True(t, status.ForwardingEnabled)
	require.True(t, status.NATEnabled)
}
